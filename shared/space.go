package shared

import (
	"fmt"

	"github.com/ricochet2200/go-disk-usage/du"
)

// AvailableSpace returns the number of bytes available to the caller on the
// filesystem holding path.
func AvailableSpace(path string) uint64 {
	usage := du.NewDiskUsage(path)
	return usage.Available()
}

// ValidateSpace indicates whether size bytes can be written below path.
func ValidateSpace(path string, size uint64) error {
	available := AvailableSpace(path)
	if available < size {
		return fmt.Errorf("%w: required %d bytes, available %d bytes at %v", ErrInsufficientSpace, size, available, path)
	}
	return nil
}
