// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor with an in-process POSIX shell interpreter.
// Commands never change the working directory of the current process.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run parses command and runs it in dir.
//
// Output is written to stdout and stderr when they are non-nil, to the Vertex
// carried by ctx when there is one, and line by line to the debug log.
//
// The environment is os.Environ() overlaid with env, with special handling for
// PATH: entries in env are prepended to the system PATH.
func (e *Executor) Run(
	ctx context.Context,
	dir, command string,
	env []string,
	stdout, stderr io.Writer,
) (int, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, errors.Join(domain.ErrCommandFailed, zerr.With(err, "command", command))
	}

	stdoutLog := &logWriter{logger: e.logger, stream: "stdout"}
	stderrLog := &logWriter{logger: e.logger, stream: "stderr"}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	outs := []io.Writer{stdoutLog}
	errs := []io.Writer{stderrLog}
	if stdout != nil {
		outs = append(outs, stdout)
	}
	if stderr != nil {
		errs = append(errs, stderr)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		outs = append(outs, v.Stdout())
		errs = append(errs, v.Stderr())
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(resolveEnvironment(os.Environ(), env)...)),
		interp.StdIO(nil, io.MultiWriter(outs...), io.MultiWriter(errs...)),
	)
	if err != nil {
		return -1, errors.Join(domain.ErrCommandFailed, zerr.With(err, "dir", dir))
	}

	e.logger.Debug("running: " + command)

	err = runner.Run(ctx, prog)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, errors.Join(domain.ErrCommandFailed, zerr.With(ctxErr, "command", command))
	}
	if err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status), nil
		}
		return -1, errors.Join(domain.ErrCommandFailed, zerr.With(err, "command", command))
	}

	return 0, nil
}

type logWriter struct {
	logger ports.Logger
	stream string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	// Scan for newlines
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.stream == "stderr" {
		msg = "stderr: " + msg
	}
	w.logger.Debug(msg)
}

// resolveEnvironment merges environment variables with the defined priority
// and returns them sorted by key.
func resolveEnvironment(sysEnv, extraEnv []string) []string {
	// 1. Start with System Environment
	envMap := make(map[string]string, len(sysEnv)+len(extraEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	// 2. Apply extra Environment (Prepend PATH)
	for _, entry := range extraEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
