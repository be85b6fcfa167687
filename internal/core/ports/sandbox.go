package ports

import (
	"context"

	"go.trai.ch/lambdazip/internal/core/domain"
)

// Sandbox is a private staging directory that accumulates the files of one archive.
//
//go:generate mockgen -source=sandbox.go -destination=mocks/mock_sandbox.go -package=mocks
type Sandbox interface {
	// Root returns the absolute path of the staging directory.
	Root() string

	// ImportPath copies a file or directory tree into the root under its base name,
	// preserving modification times and permission bits.
	ImportPath(path string) error

	// ImportPathAs copies a file or directory tree to rel inside the root.
	ImportPathAs(path, rel string) error

	// WriteFileString writes contents to rel and stamps it with domain.SourceModTime.
	WriteFileString(rel, contents string) error

	// RunCommand runs a shell command inside the root and returns its exit status.
	RunCommand(ctx context.Context, command string) (int, error)

	// Files lists every file under the root as slash-separated relative paths, in lexical order.
	Files() ([]string, error)

	// Zip writes every file into a zip archive at output.
	Zip(output string) error

	// Destroy removes the staging directory. Failures are ignored.
	Destroy()
}

// SandboxFactory allocates staging areas.
type SandboxFactory interface {
	// Create allocates a fresh, empty staging area.
	Create(opts domain.StagingOptions) (Sandbox, error)
}
