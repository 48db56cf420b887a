package domain

import (
	"path/filepath"
	"strings"
)

const (
	// BakeryDirName is the name of the per-project working directory.
	BakeryDirName = ".bakery"

	// BuildDirName is the name of the directory holding objects and artifacts.
	BuildDirName = "build"

	// CacheDirName is the name of the incremental build cache directory.
	CacheDirName = "cache"

	// HashesFileName is the name of the incremental build cache file.
	HashesFileName = "hashes.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "bakery.toml"

	// ObjectExtension is the extension of compiled object files.
	ObjectExtension = "o"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultBuildPath returns the build output directory relative to a project root.
// It joins .bakery and build.
func DefaultBuildPath() string {
	return filepath.Join(BakeryDirName, BuildDirName)
}

// DefaultCachePath returns the cache directory relative to a project root.
// It joins .bakery and cache.
func DefaultCachePath() string {
	return filepath.Join(BakeryDirName, CacheDirName)
}

// DefaultHashesPath returns the cache file relative to a project root.
func DefaultHashesPath() string {
	return filepath.Join(BakeryDirName, CacheDirName, HashesFileName)
}

// ObjectName returns the object file name for a source: its file stem plus ".o".
// Sources sharing a stem in different directories map to the same object.
func ObjectName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + ObjectExtension
}
