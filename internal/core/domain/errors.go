package domain

import "go.trai.ch/zerr"

var (
	// ErrCodeRequired is returned when a packaging request does not name a code file.
	ErrCodeRequired = zerr.New("code path is required")

	// ErrInvalidRequest is returned when a packaging request cannot be decoded.
	ErrInvalidRequest = zerr.New("invalid packaging request")

	// ErrNotFound is returned when a declared input path does not exist.
	ErrNotFound = zerr.New("path not found")

	// ErrUnsupportedLanguage is returned when no dependency collector handles the code file's extension.
	ErrUnsupportedLanguage = zerr.New("unsupported code type")

	// ErrEnvironment is returned when the host cannot provide a staging directory or an installer executable.
	ErrEnvironment = zerr.New("environment not usable")

	// ErrInstallFailed is returned in strict mode when a dependency installer exits with a non-zero status.
	ErrInstallFailed = zerr.New("dependency installation failed")

	// ErrCommandFailed is returned when a command cannot be parsed or started by the shell.
	ErrCommandFailed = zerr.New("command failed")

	// ErrImportFailed is returned when a file cannot be copied into the staging area.
	ErrImportFailed = zerr.New("failed to import path")

	// ErrStageWriteFailed is returned when a file cannot be written inside the staging area.
	ErrStageWriteFailed = zerr.New("failed to write staged file")

	// ErrStageWalkFailed is returned when the staging area cannot be enumerated.
	ErrStageWalkFailed = zerr.New("failed to list staged files")

	// ErrTimestampFailed is returned when a staged file's times cannot be updated.
	ErrTimestampFailed = zerr.New("failed to set file times")

	// ErrManifestRewriteFailed is returned when a staged manifest cannot be scrubbed.
	ErrManifestRewriteFailed = zerr.New("failed to rewrite manifest")

	// ErrArchiveFailed is returned when the zip archive cannot be written.
	ErrArchiveFailed = zerr.New("failed to write archive")

	// ErrDigestFailed is returned when the archive digest cannot be computed.
	ErrDigestFailed = zerr.New("failed to compute archive digest")

	// ErrFileHashFailed is returned when hashing a staged file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCompression is returned when the configured compression method is unknown.
	ErrInvalidCompression = zerr.New("invalid compression, expected 'store' or 'deflate'")

	// ErrPackagingFailed is returned when a packaging run aborts.
	ErrPackagingFailed = zerr.New("packaging failed")
)
