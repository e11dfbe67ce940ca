package persistence

import (
	"os"
)

// NumBytesWritten returns the total size of the snapshot files in dir.
// A missing dir holds no snapshots.
func NumBytesWritten(dir string) (uint64, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	var numBytes uint64
	var numFiles int
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if IsSnapshotFile(info) {
			numBytes += uint64(info.Size())
			numFiles++
		}
	}

	return numBytes, numFiles, nil
}
