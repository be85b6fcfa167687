// Package packager orchestrates a single packaging run: staging the code and
// extra files, collecting dependencies, writing the archive and digesting it.
package packager

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
)

// Step names recorded through telemetry.
const (
	stepImport  = "import sources"
	stepCollect = "collect dependencies"
	stepZip     = "write archive"
	stepDigest  = "digest archive"
)

// Packager builds deterministic deployment archives.
type Packager struct {
	sandboxes ports.SandboxFactory
	collector ports.DependencyCollector
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Packager.
func New(
	sandboxes ports.SandboxFactory,
	collector ports.DependencyCollector,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Packager {
	return &Packager{
		sandboxes: sandboxes,
		collector: collector,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Package stages req in a fresh sandbox, installs its dependencies and writes
// the archive to req.OutputFilename(). The sandbox is always destroyed. On
// failure no partially written archive is left behind.
func (p *Packager) Package(ctx context.Context, req domain.Request, settings domain.Settings) (domain.Result, error) {
	lang, err := domain.LanguageOf(req.Code)
	if err != nil {
		return domain.Result{}, err
	}

	sb, err := p.sandboxes.Create(settings.StagingOptions())
	if err != nil {
		return domain.Result{}, err
	}
	defer sb.Destroy()

	p.logger.Debug(fmt.Sprintf("staging %s (%s) in %s", req.Code, lang, sb.Root()))

	if err := p.step(ctx, stepImport, func(context.Context) error {
		return importSources(sb, req)
	}); err != nil {
		return domain.Result{}, err
	}

	if err := p.step(ctx, stepCollect, func(ctx context.Context) error {
		return p.collector.Collect(ctx, sb, req.Code, settings)
	}); err != nil {
		return domain.Result{}, err
	}

	p.logFingerprint(sb)

	output := req.OutputFilename()
	if err := p.step(ctx, stepZip, func(context.Context) error {
		return sb.Zip(output)
	}); err != nil {
		removeArchive(output)
		return domain.Result{}, err
	}

	var sum string
	if err := p.step(ctx, stepDigest, func(context.Context) error {
		var err error
		sum, err = p.Digest(output)
		return err
	}); err != nil {
		removeArchive(output)
		return domain.Result{}, err
	}

	return domain.Result{
		Code:               req.Code,
		OutputFilename:     output,
		OutputBase64SHA256: sum,
	}, nil
}

// Digest returns the base64-encoded SHA-256 of the archive at path.
func (p *Packager) Digest(path string) (string, error) {
	return p.hasher.ComputeArchiveDigest(path)
}

func (p *Packager) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := p.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

func (p *Packager) logFingerprint(sb ports.Sandbox) {
	sum, err := p.hasher.ComputeTreeHash(sb.Root())
	if err != nil {
		p.logger.Warn("could not fingerprint staged files: " + err.Error())
		return
	}
	p.logger.Debug("staged tree fingerprint " + sum)
}

// importSources copies the code file to the staging root, then every extra
// file at its path relative to the code directory.
func importSources(sb ports.Sandbox, req domain.Request) error {
	if err := sb.ImportPath(req.Code); err != nil {
		return err
	}
	for _, extra := range req.ExtraImports() {
		if err := sb.ImportPathAs(extra.Source, extra.Staged); err != nil {
			return err
		}
	}
	return nil
}

func removeArchive(path string) {
	_ = os.Remove(path)
}
