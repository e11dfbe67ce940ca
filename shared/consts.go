package shared

import "os"

const (
	BitsPerByte = 8

	OwnerReadWrite     = os.FileMode(0o600)
	OwnerReadWriteExec = os.FileMode(0o700)
)
