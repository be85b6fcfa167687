package domain

import "time"

// Compression selects how archive entries are stored.
type Compression string

const (
	// CompressionStore writes entries uncompressed.
	CompressionStore Compression = "store"
	// CompressionDeflate writes deflate-compressed entries.
	CompressionDeflate Compression = "deflate"
)

// Valid reports whether c is a known compression method.
func (c Compression) Valid() bool {
	return c == CompressionStore || c == CompressionDeflate
}

// Settings tunes a packaging run. The zero value is not usable; start from DefaultSettings.
type Settings struct {
	// PythonInstaller is the pip executable.
	PythonInstaller string
	// PythonInterpreter is the interpreter used to precompile installed modules.
	PythonInterpreter string
	// NodeInstaller is the npm executable.
	NodeInstaller string

	// Placeholder replaces the staging root inside rewritten manifests.
	Placeholder string

	// CommandTimeout bounds each external command. Zero disables the limit.
	CommandTimeout time.Duration

	// StrictInstall turns a non-zero installer exit status into an error.
	StrictInstall bool

	// Compression is the archive entry method.
	Compression Compression
}

// DefaultSettings returns the settings that reproduce the historical packager.
func DefaultSettings() Settings {
	return Settings{
		PythonInstaller:   "pip",
		PythonInterpreter: "python",
		NodeInstaller:     "npm",
		Placeholder:       PathPlaceholder,
		Compression:       CompressionStore,
	}
}

// StagingOptions returns the subset of settings the staging area needs.
func (s Settings) StagingOptions() StagingOptions {
	return StagingOptions{
		CommandTimeout: s.CommandTimeout,
		Compression:    s.Compression,
	}
}

// StagingOptions configures a staging area.
type StagingOptions struct {
	CommandTimeout time.Duration
	Compression    Compression
}
