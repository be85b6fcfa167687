// Package config provides the settings loader for lambdazip.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the settings file at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Debug("no settings file at " + path + ", using defaults")
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	settings, err := Parse(data)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded settings from " + path)
	return settings, nil
}

// Parse decodes a settings document and applies it over the defaults.
// Unknown keys are rejected.
func Parse(data []byte) (domain.Settings, error) {
	var file Lambdazipfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, errors.Join(domain.ErrConfigParseFailed, err)
	}

	return file.settings()
}

func (f *Lambdazipfile) settings() (domain.Settings, error) {
	s := domain.DefaultSettings()

	overlay(&s.PythonInstaller, f.Python.Installer)
	overlay(&s.PythonInterpreter, f.Python.Interpreter)
	overlay(&s.NodeInstaller, f.Node.Installer)
	overlay(&s.Placeholder, f.Placeholder)

	if f.CommandTimeout != "" {
		d, err := time.ParseDuration(f.CommandTimeout)
		if err != nil {
			return domain.Settings{}, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "command_timeout", f.CommandTimeout))
		}
		if d < 0 {
			return domain.Settings{}, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.New("must not be negative"), "command_timeout", f.CommandTimeout))
		}
		s.CommandTimeout = d
	}

	if f.StrictInstall != nil {
		s.StrictInstall = *f.StrictInstall
	}

	if f.Compression != "" {
		c := domain.Compression(f.Compression)
		if !c.Valid() {
			return domain.Settings{}, errors.Join(domain.ErrInvalidCompression, zerr.With(zerr.New("unknown compression method"), "compression", f.Compression))
		}
		s.Compression = c
	}

	return s, nil
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
