package ports

// ArtifactCopier copies build artifacts between build directories.
//
//go:generate mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactCopier interface {
	// Copy copies src to dst, replacing dst.
	Copy(src, dst string) error
}
