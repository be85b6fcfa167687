package collector

import (
	"context"
	"strconv"

	"go.trai.ch/lambdazip/internal/adapters/sandbox"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
)

// setupCfg keeps pip from applying a user or distro install prefix to -t.
const setupCfg = "[install]\nprefix=\n"

// PythonCollector installs requirements.txt with pip and precompiles the result.
type PythonCollector struct {
	installer
}

// Collect installs requirements.txt next to code into sb. Installed and
// compiled files take the modification time of requirements.txt, and bytecode
// embeds the same time.
func (c *PythonCollector) Collect(ctx context.Context, sb ports.Sandbox, code string, settings domain.Settings) error {
	requirements, info, ok, err := manifest(code, domain.LanguagePython)
	if err != nil || !ok {
		return err
	}

	if err := c.require(settings.PythonInstaller); err != nil {
		return err
	}
	if err := c.require(settings.PythonInterpreter); err != nil {
		return err
	}

	if err := sb.WriteFileString("setup.cfg", setupCfg); err != nil {
		return err
	}

	mtime := info.ModTime()
	sbm, err := sandbox.NewMtimeSandbox(sb, mtime)
	if err != nil {
		return err
	}

	install := settings.PythonInstaller + " install -q -r " + quote(requirements) + " -t " + quote(sb.Root()+"/")
	if err := c.run(ctx, sbm, install, settings); err != nil {
		return err
	}

	epoch := strconv.FormatFloat(float64(mtime.UnixNano())/1e9, 'f', -1, 64)
	script := "import time, compileall; time.time = lambda: " + epoch + "; compileall.compile_dir(\".\", force=True)"
	return c.run(ctx, sbm, settings.PythonInterpreter+" -c "+quote(script), settings)
}
