package fs

import (
	_ "crypto/sha256" // registers SHA-256 for go-digest
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for archives and staged trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeArchiveDigest returns the standard base64 encoding of the SHA-256 of
// the file at path.
func (h *Hasher) ComputeArchiveDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", errors.Join(domain.ErrDigestFailed, zerr.With(err, "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	sum := digest.SHA256.Hash()
	if _, err := io.Copy(sum, f); err != nil {
		return "", errors.Join(domain.ErrDigestFailed, zerr.With(err, "path", path))
	}

	return base64.StdEncoding.EncodeToString(sum.Sum(nil)), nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, errors.Join(domain.ErrFileHashFailed, zerr.With(err, "path", path))
	}

	return hasher.Sum64(), nil
}

// ComputeTreeHash fingerprints every file below root. Each file contributes
// its relative path, permission bits, modification time and content hash, in
// lexical path order.
func (h *Hasher) ComputeTreeHash(root string) (string, error) {
	files, err := h.walker.ListFiles(root)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for _, rel := range files {
		if err := h.hashFile(root, rel, hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFile(root, rel string, mainHasher io.Writer) error {
	path := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	_, _ = mainHasher.Write([]byte(rel))
	_, _ = mainHasher.Write([]byte{0})

	contentHash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	fields := []uint64{uint64(info.Mode().Perm()), uint64(info.ModTime().Unix()), contentHash} //nolint:gosec // Epoch seconds are positive for staged files
	if err := binary.Write(mainHasher, binary.LittleEndian, fields); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
