// Package collector installs the third-party dependencies of a handler into a sandbox.
package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/lambdazip/internal/adapters/sandbox"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

var _ ports.DependencyCollector = (*Dispatcher)(nil)

// Dispatcher selects the collector for a code file's language.
type Dispatcher struct {
	python *PythonCollector
	node   *NodeCollector
}

// NewDispatcher creates a Dispatcher with the Python and Node collectors.
func NewDispatcher(logger ports.Logger) *Dispatcher {
	base := installer{logger: logger}
	return &Dispatcher{
		python: &PythonCollector{installer: base},
		node:   &NodeCollector{installer: base},
	}
}

// Collect installs the dependencies declared next to code into sb.
func (d *Dispatcher) Collect(ctx context.Context, sb ports.Sandbox, code string, settings domain.Settings) error {
	lang, err := domain.LanguageOf(code)
	if err != nil {
		return err
	}

	switch lang {
	case domain.LanguagePython:
		return d.python.Collect(ctx, sb, code, settings)
	case domain.LanguageNode:
		return d.node.Collect(ctx, sb, code, settings)
	default:
		return errors.Join(domain.ErrUnsupportedLanguage, zerr.With(zerr.New("no collector for language"), "language", lang.String()))
	}
}

// manifest locates the dependency manifest next to code. It returns ok=false
// when there is none.
func manifest(code string, lang domain.Language) (path string, info os.FileInfo, ok bool, err error) {
	path, err = filepath.Abs(filepath.Join(filepath.Dir(code), lang.ManifestName()))
	if err != nil {
		return "", nil, false, zerr.With(zerr.Wrap(err, "failed to resolve manifest path"), "code", code)
	}

	info, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil, false, nil
		}
		return path, nil, false, zerr.With(zerr.Wrap(err, "failed to stat manifest"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return path, nil, false, nil
	}
	return path, info, true, nil
}

// installer holds what the language collectors share.
type installer struct {
	logger ports.Logger
}

// require fails with ErrEnvironment unless the executable of command is on PATH.
func (i installer) require(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.Join(domain.ErrEnvironment, zerr.With(zerr.New("empty installer command"), "installer", command))
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return errors.Join(domain.ErrEnvironment, zerr.With(err, "installer", fields[0]))
	}
	return nil
}

// run runs command in sb. A non-zero exit status is logged as a warning, or
// returned as ErrInstallFailed when settings ask for strict installs.
func (i installer) run(ctx context.Context, sb *sandbox.MtimeSandbox, command string, settings domain.Settings) error {
	code, err := sb.RunCommand(ctx, command)
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}

	if settings.StrictInstall {
		return errors.Join(domain.ErrInstallFailed, zerr.With(zerr.With(zerr.New("installer exited with non-zero status"), "command", command), "exit_code", code))
	}
	i.logger.Warn(fmt.Sprintf("%s exited with status %d, continuing", command, code))
	return nil
}

func quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		// Only strings with NUL bytes are rejected, which no path contains.
		return s
	}
	return q
}
