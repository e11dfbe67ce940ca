package persistence

import (
	"os"
	"path/filepath"
	"strings"
)

// SnapshotExt is the file extension of snapshot files.
const SnapshotExt = ".bitbuf"

// SnapshotPath returns the path of the snapshot called name inside dir.
// Names given with an extension or as a path are used as is.
func SnapshotPath(dir, name string) string {
	if filepath.Ext(name) == "" {
		name += SnapshotExt
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(dir, name)
}

// IsSnapshotFile reports whether file is a regular snapshot file.
func IsSnapshotFile(file os.FileInfo) bool {
	return file.Mode().IsRegular() && filepath.Ext(file.Name()) == SnapshotExt
}
