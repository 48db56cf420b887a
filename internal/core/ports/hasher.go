package ports

// Hasher computes content digests.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// DigestFile returns the hex digest of the file's full content.
	DigestFile(path string) (string, error)
	// DigestBytes returns the hex digest of data.
	DigestBytes(data []byte) string
}
