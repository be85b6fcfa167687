// Package sandbox implements the staging area an archive is assembled in.
package sandbox

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/lambdazip/internal/adapters/fs"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Sandbox        = (*Sandbox)(nil)
	_ ports.SandboxFactory = (*Factory)(nil)
)

// Sandbox is a private temporary directory owned by a single packaging run.
type Sandbox struct {
	root     string
	executor ports.Executor
	walker   *fs.Walker
	opts     domain.StagingOptions
}

// New allocates a fresh staging directory.
func New(executor ports.Executor, walker *fs.Walker, opts domain.StagingOptions) (*Sandbox, error) {
	root, err := os.MkdirTemp("", domain.StagingDirPattern)
	if err != nil {
		return nil, errors.Join(domain.ErrEnvironment, err)
	}

	// Installers and manifests see the absolute path, resolve it once.
	if abs, absErr := filepath.Abs(root); absErr == nil {
		root = abs
	}

	return &Sandbox{
		root:     root,
		executor: executor,
		walker:   walker,
		opts:     opts,
	}, nil
}

// Root returns the absolute path of the staging directory.
func (s *Sandbox) Root() string {
	return s.root
}

// ImportPath copies path into the root under its base name.
func (s *Sandbox) ImportPath(path string) error {
	return s.ImportPathAs(path, filepath.Base(path))
}

// ImportPathAs copies path to rel inside the root. Directories are copied recursively.
func (s *Sandbox) ImportPathAs(path, rel string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Join(domain.ErrNotFound, zerr.With(err, "path", path))
		}
		return errors.Join(domain.ErrImportFailed, zerr.With(err, "path", path))
	}

	dst, err := s.resolve(rel)
	if err != nil {
		return err
	}

	if err := fs.CopyPath(path, dst); err != nil {
		return errors.Join(domain.ErrImportFailed, zerr.With(err, "path", path))
	}
	return nil
}

// WriteFileString writes contents to rel and stamps it with the fixed source time.
func (s *Sandbox) WriteFileString(rel, contents string) error {
	dst, err := s.resolve(rel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStageWriteFailed, zerr.With(err, "path", rel))
	}
	if err := os.WriteFile(dst, []byte(contents), domain.FilePerm); err != nil { //nolint:gosec // Staged files are packaged, not secret
		return errors.Join(domain.ErrStageWriteFailed, zerr.With(err, "path", rel))
	}
	if err := fs.SetModTime(dst, domain.SourceModTime()); err != nil {
		return errors.Join(domain.ErrTimestampFailed, err)
	}
	return nil
}

// RunCommand runs command with the root as its working directory.
func (s *Sandbox) RunCommand(ctx context.Context, command string) (int, error) {
	if s.opts.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.CommandTimeout)
		defer cancel()
	}
	return s.executor.Run(ctx, s.root, command, nil, nil, nil)
}

// Files lists every file under the root in lexical order.
func (s *Sandbox) Files() ([]string, error) {
	files, err := s.walker.ListFiles(s.root)
	if err != nil {
		return nil, errors.Join(domain.ErrStageWalkFailed, err)
	}
	return files, nil
}

// Destroy removes the staging directory. Failures are ignored.
func (s *Sandbox) Destroy() {
	_ = os.RemoveAll(s.root)
}

func (s *Sandbox) resolve(rel string) (string, error) {
	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", errors.Join(domain.ErrStageWriteFailed, zerr.With(zerr.New("path escapes staging area"), "path", rel))
	}
	return filepath.Join(s.root, rel), nil
}

// Factory allocates Sandboxes.
type Factory struct {
	executor ports.Executor
	walker   *fs.Walker
}

// NewFactory creates a new Factory.
func NewFactory(executor ports.Executor, walker *fs.Walker) *Factory {
	return &Factory{executor: executor, walker: walker}
}

// Create allocates a fresh, empty staging area.
func (f *Factory) Create(opts domain.StagingOptions) (ports.Sandbox, error) {
	return New(f.executor, f.walker, opts)
}
