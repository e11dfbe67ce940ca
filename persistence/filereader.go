package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type FileReader struct {
	file *os.File
	buf  *bufio.Reader
}

// A compile time check to ensure that FileReader fully implements io.Reader.
var _ io.Reader = (*FileReader)(nil)

func NewFileReader(name string) (*FileReader, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}

	return &FileReader{
		file: file,
		buf:  bufio.NewReader(file),
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.buf.Read(p)
}

// Size returns the size of the underlying file, in bytes.
func (r *FileReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (r *FileReader) Close() error {
	r.buf = nil
	return r.file.Close()
}
