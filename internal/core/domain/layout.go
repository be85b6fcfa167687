package domain

import "time"

const (
	// SourceModTimeUnix is the modification time, in epoch seconds, given to every
	// file the staging step writes itself. Archives built by earlier packagers
	// used the same value, so it must never change.
	SourceModTimeUnix = 1493649512

	// PathPlaceholder replaces the staging directory's absolute path inside
	// installer-written manifests. It is where the function is unpacked at deploy time.
	PathPlaceholder = "/tmp/lambda-package"

	// StagingDirPattern is the os.MkdirTemp pattern for staging directories.
	StagingDirPattern = "*lambda-packager"

	// ArchiveExt is the extension of produced archives.
	ArchiveExt = ".zip"

	// ConfigFileName is the default name of the settings file.
	ConfigFileName = "lambdazip.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// SourceModTime returns SourceModTimeUnix as a time.Time.
func SourceModTime() time.Time {
	return time.Unix(SourceModTimeUnix, 0)
}
