package domain

// Hashes maps a project-relative path to the hex digest of its content.
// The configuration file is keyed by ConfigFileName.
type Hashes map[string]string

// Lookup returns the recorded digest of path.
func (h Hashes) Lookup(path string) (string, bool) {
	digest, ok := h[path]
	return digest, ok
}
