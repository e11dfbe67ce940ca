package bitbuffer

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuf/shared"
)

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithLogger sets the logger used to report storage reallocation.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Buffer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithHostEndian pins the byte order the buffer's bits are assumed to be laid
// out in. It defaults to shared.HostEndian().
func WithHostEndian(endian shared.Endian) Option {
	return func(b *Buffer) {
		if endian != shared.UnknownEndian {
			b.host = endian
		}
	}
}
