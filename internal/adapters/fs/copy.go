package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

const dirPerm = 0o750

// CopyPath copies src to dst. A directory is copied recursively. Symlinks are
// followed, so dst always holds real files. Permission bits and modification
// times of copied files are preserved.
func CopyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}
	if info.IsDir() {
		return copyTree(src, dst, info)
	}
	return CopyFile(src, dst)
}

// CopyFile copies a single file's content, permission bits and modification time.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", dst)
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", src)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination"), "path", dst)
	}

	// OpenFile applies the umask, so set the mode explicitly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", dst)
	}
	return SetModTime(dst, info.ModTime())
}

// SetModTime sets both the access and modification time of path to t.
func SetModTime(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file times"), "path", path)
	}
	return nil
}

func copyTree(src, dst string, info fs.FileInfo) error {
	if err := os.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read directory"), "path", src)
	}

	for _, entry := range entries {
		if err := CopyPath(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}

	return SetModTime(dst, info.ModTime())
}
