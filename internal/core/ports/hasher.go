package ports

// Hasher defines the interface for computing digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeArchiveDigest returns the base64-encoded SHA-256 of the file at path.
	ComputeArchiveDigest(path string) (string, error)

	// ComputeTreeHash fingerprints every file below root, including its
	// relative path, mode and modification time.
	ComputeTreeHash(root string) (string, error)
}
