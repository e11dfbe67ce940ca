package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spacemeshos/bitbuf/shared"
)

type FileWriter struct {
	file *os.File
	buf  *bufio.Writer
}

// A compile time check to ensure that FileWriter fully implements io.Writer.
var _ io.Writer = (*FileWriter)(nil)

// NewFileWriter creates (or truncates) filename for writing.
func NewFileWriter(filename string) (*FileWriter, error) {
	f, err := os.OpenFile(filename, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, err
	}
	return &FileWriter{
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *FileWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush disk writer: %w", err)
	}

	return nil
}

// Close flushes any buffered data, closes the file and returns its final info.
func (w *FileWriter) Close() (os.FileInfo, error) {
	if err := w.Flush(); err != nil {
		w.file.Close()
		return nil, err
	}
	w.buf = nil

	info, err := w.file.Stat()
	if err != nil {
		w.file.Close()
		return nil, err
	}

	if err := w.file.Close(); err != nil {
		return nil, err
	}
	w.file = nil

	return info, nil
}
