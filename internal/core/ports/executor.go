// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running shell commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run interprets command as a POSIX shell command line with dir as its working
	// directory and waits for it to finish.
	//
	// The env parameter contains extra variables in "KEY=VALUE" format layered
	// over the process environment.
	//
	// It returns the command's exit status. A non-zero status is not an error;
	// an error means the command could not be parsed or run at all.
	Run(ctx context.Context, dir, command string, env []string, stdout, stderr io.Writer) (int, error)
}
