package sandbox

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.trai.ch/lambdazip/internal/adapters/fs"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
)

var _ ports.Sandbox = (*MtimeSandbox)(nil)

// MtimeSandbox wraps a Sandbox so that every file a command creates is
// stamped with a fixed modification time. Files present when the wrapper was
// created keep their times.
type MtimeSandbox struct {
	inner    ports.Sandbox
	modTime  time.Time
	baseline domain.FileSet
}

// NewMtimeSandbox snapshots the files of inner and returns the wrapper.
func NewMtimeSandbox(inner ports.Sandbox, modTime time.Time) (*MtimeSandbox, error) {
	files, err := inner.Files()
	if err != nil {
		return nil, err
	}
	return &MtimeSandbox{
		inner:    inner,
		modTime:  modTime,
		baseline: domain.NewFileSet(files),
	}, nil
}

// Root returns the wrapped sandbox's root.
func (m *MtimeSandbox) Root() string {
	return m.inner.Root()
}

// ImportPath delegates to the wrapped sandbox.
func (m *MtimeSandbox) ImportPath(path string) error {
	return m.inner.ImportPath(path)
}

// ImportPathAs delegates to the wrapped sandbox.
func (m *MtimeSandbox) ImportPathAs(path, rel string) error {
	return m.inner.ImportPathAs(path, rel)
}

// WriteFileString delegates to the wrapped sandbox.
func (m *MtimeSandbox) WriteFileString(rel, contents string) error {
	return m.inner.WriteFileString(rel, contents)
}

// Files delegates to the wrapped sandbox.
func (m *MtimeSandbox) Files() ([]string, error) {
	return m.inner.Files()
}

// Zip delegates to the wrapped sandbox.
func (m *MtimeSandbox) Zip(output string) error {
	return m.inner.Zip(output)
}

// Destroy delegates to the wrapped sandbox.
func (m *MtimeSandbox) Destroy() {
	m.inner.Destroy()
}

// RunCommand runs command in the wrapped sandbox, then stamps every file that
// did not exist at construction time. Stamping happens regardless of the
// command's exit status.
func (m *MtimeSandbox) RunCommand(ctx context.Context, command string) (int, error) {
	code, err := m.inner.RunCommand(ctx, command)
	if err != nil {
		return code, err
	}

	files, err := m.inner.Files()
	if err != nil {
		return code, err
	}

	for _, rel := range m.baseline.Added(files) {
		path := filepath.Join(m.inner.Root(), filepath.FromSlash(rel))
		if err := fs.SetModTime(path, m.modTime); err != nil {
			return code, errors.Join(domain.ErrTimestampFailed, err)
		}
	}
	return code, nil
}
