// Package app implements the application layer for lambdazip.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/lambdazip/internal/engine/packager"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	packager     *packager.Packager
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pkg *packager.Packager,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		packager:     pkg,
		telemetry:    telemetry,
		logger:       log,
	}
}

// RunOptions configuration for the Run and Package methods.
type RunOptions struct {
	// ConfigPath is the settings file. A missing file means defaults.
	ConfigPath string
	Verbose    bool
	JSONLogs   bool
}

// logConfigurer is implemented by loggers whose output can be tuned at runtime.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Run reads a JSON request from in, packages it and writes the JSON result to
// out. Nothing is written to out on failure.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer, opts RunOptions) error {
	a.configureLogger(opts)

	var msg requestMessage
	if err := json.NewDecoder(in).Decode(&msg); err != nil {
		return errors.Join(domain.ErrInvalidRequest, err)
	}

	req, err := msg.toDomain()
	if err != nil {
		return err
	}

	res, err := a.Package(ctx, req, opts)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(out).Encode(res); err != nil {
		return zerr.Wrap(err, "failed to write result")
	}
	return nil
}

// Package loads the settings and runs a single packaging request.
func (a *App) Package(ctx context.Context, req domain.Request, opts RunOptions) (domain.Result, error) {
	a.configureLogger(opts)
	defer func() {
		_ = a.telemetry.Close()
	}()

	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}
	settings, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Result{}, zerr.Wrap(err, "failed to load configuration")
	}

	res, err := a.packager.Package(ctx, req, settings)
	if err != nil {
		return domain.Result{}, errors.Join(domain.ErrPackagingFailed, zerr.With(err, "code", req.Code))
	}

	a.logger.Debug("wrote " + res.OutputFilename + " (sha256 " + res.OutputBase64SHA256 + ")")
	return res, nil
}

func (a *App) configureLogger(opts RunOptions) {
	if c, ok := a.logger.(logConfigurer); ok {
		c.SetVerbose(opts.Verbose)
		c.SetJSON(opts.JSONLogs)
	}
}
