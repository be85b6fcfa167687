package fs_test

import (
	"crypto/sha256"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lambdazip/internal/adapters/fs"
	"go.trai.ch/lambdazip/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600)) //nolint:gosec // Test file permissions
}

func TestWalker_ListFiles(t *testing.T) {
	// tmp/
	//   a/b.txt
	//   a.txt
	//   empty/
	//   link-file -> a.txt
	//   link-dir  -> a
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a", "b.txt"), "b")
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "empty"), 0o750))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "a.txt"), filepath.Join(tmpDir, "link-file")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "a"), filepath.Join(tmpDir, "link-dir")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dangling")))

	files, err := fs.NewWalker().ListFiles(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "a/b.txt", "link-file"}, files)
}

func TestWalker_ListFiles_MissingRoot(t *testing.T) {
	_, err := fs.NewWalker().ListFiles(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "one"), "1")
	writeFile(t, filepath.Join(tmpDir, "two"), "2")

	count := 0
	for _, err := range fs.NewWalker().WalkFiles(tmpDir) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestCopyPath_File(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src", "handler.py")
	writeFile(t, src, "print('hi')")
	require.NoError(t, os.Chmod(src, 0o755)) //nolint:gosec // Test file permissions
	mtime := time.Unix(1600000000, 0)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	dst := filepath.Join(tmpDir, "dst", "nested", "handler.py")
	require.NoError(t, fs.CopyPath(src, dst))

	content, err := os.ReadFile(dst) //nolint:gosec // Test path
	require.NoError(t, err)
	assert.Equal(t, "print('hi')", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestCopyPath_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "lib")
	writeFile(t, filepath.Join(src, "util.py"), "x = 1")
	writeFile(t, filepath.Join(src, "sub", "deep.py"), "y = 2")
	mtime := time.Unix(1500000000, 0)
	require.NoError(t, os.Chtimes(filepath.Join(src, "sub", "deep.py"), mtime, mtime))

	dst := filepath.Join(tmpDir, "out", "lib")
	require.NoError(t, fs.CopyPath(src, dst))

	files, err := fs.NewWalker().ListFiles(dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/deep.py", "util.py"}, files)

	info, err := os.Stat(filepath.Join(dst, "sub", "deep.py"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestCopyPath_Missing(t *testing.T) {
	tmpDir := t.TempDir()
	err := fs.CopyPath(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dst"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	writeFile(t, path, "x")

	require.NoError(t, fs.SetModTime(path, domain.SourceModTime()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.SourceModTimeUnix), info.ModTime().Unix())
}

func TestHasher_ComputeArchiveDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())
	got, err := hasher.ComputeArchiveDigest(path)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("hello world"))
	assert.Equal(t, base64.StdEncoding.EncodeToString(sum[:]), got)
	assert.Equal(t, "uU0nuZNNPgilLlLX2n2r+sSE7+N6U4DukIj3rOLvzek=", got)
}

func TestHasher_ComputeArchiveDigest_Missing(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())
	_, err := hasher.ComputeArchiveDigest(filepath.Join(t.TempDir(), "missing.zip"))
	require.ErrorIs(t, err, domain.ErrDigestFailed)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")
}

func TestHasher_ComputeTreeHash(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "pkg", "mod.py")
	writeFile(t, file, "content")
	require.NoError(t, fs.SetModTime(file, domain.SourceModTime()))

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeTreeHash(root)
	require.NoError(t, err)
	assert.Len(t, hash1, 16)

	// 1. Same tree, same hash
	hash2, err := hasher.ComputeTreeHash(root)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	// 2. Modification time participates
	later := domain.SourceModTime().Add(time.Hour)
	require.NoError(t, fs.SetModTime(file, later))
	hash3, err := hasher.ComputeTreeHash(root)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3, "expected hash to change when mtime changes")

	// 3. Content participates
	require.NoError(t, fs.SetModTime(file, domain.SourceModTime()))
	writeFile(t, file, "changed")
	require.NoError(t, fs.SetModTime(file, domain.SourceModTime()))
	hash4, err := hasher.ComputeTreeHash(root)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash4, "expected hash to change when content changes")
}
