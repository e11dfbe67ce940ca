package persistence

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/spacemeshos/sha256-simd"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuf/bitbuffer"
	"github.com/spacemeshos/bitbuf/bitstream"
	"github.com/spacemeshos/bitbuf/shared"
)

const (
	// Magic opens every snapshot file ("bitb").
	Magic = uint32(0x62697462)
	// Version is the snapshot format version written by Save.
	Version = uint32(1)
)

var (
	ErrBadMagic           = errors.New("not a bitbuffer snapshot")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrSnapshotNotExist   = errors.New("snapshot does not exist")
	ErrCorruptSnapshot    = errors.New("corrupt snapshot")
)

// header precedes the bit payload of a snapshot.
type header struct {
	Magic      uint32
	Version    uint32
	HostEndian uint32
	Length     uint64
	Checksum   []byte
}

// Save writes b to path as a snapshot: an xdr header followed by the buffer
// bits, bit 0 first, zero padded to a whole byte.
func Save(path string, b *bitbuffer.Buffer, opts ...OptionFunc) error {
	options := applyOpts(opts...)

	payload := b.AlignedBytes()
	sum := sha256.Sum256(payload)
	h := header{
		Magic:      Magic,
		Version:    Version,
		HostEndian: uint32(b.HostEndian()),
		Length:     uint64(b.Len()),
		Checksum:   sum[:],
	}

	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, &h); err != nil {
		return fmt.Errorf("serialization failure: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, shared.OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %w", err)
	}
	if err := shared.ValidateSpace(dir, uint64(w.Len()+len(payload))); err != nil {
		return err
	}

	fw, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	if err := writeSnapshot(fw, w.Bytes(), b); err != nil {
		discard(fw, path)
		return fmt.Errorf("write to disk failure: %w", err)
	}

	info, err := fw.Close()
	if err != nil {
		os.Remove(path)
		return err
	}

	options.logger.Info("bitbuffer snapshot saved",
		zap.String("path", path),
		zap.Int("bits", b.Len()),
		zap.Int64("bytes", info.Size()),
		zap.Stringer("host_endian", b.HostEndian()),
	)
	return nil
}

func writeSnapshot(w io.Writer, header []byte, b *bitbuffer.Buffer) error {
	if _, err := w.Write(header); err != nil {
		return err
	}
	bw := bitstream.NewWriter(w)
	if err := bw.WriteBuffer(b); err != nil {
		return err
	}
	return bw.Flush(bitstream.Zero)
}

// discard closes fw and removes the partially written snapshot at path.
func discard(fw *FileWriter, path string) {
	fw.Close()
	os.Remove(path)
}

// Load reads the snapshot at path. The returned buffer is pinned to the host
// byte order it was saved with.
func Load(path string, opts ...OptionFunc) (*bitbuffer.Buffer, error) {
	options := applyOpts(opts...)

	r, err := NewFileReader(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrSnapshotNotExist, path)
		}
		return nil, err
	}
	defer r.Close()

	size, err := r.Size()
	if err != nil {
		return nil, err
	}

	h, n, err := readHeader(r, path)
	if err != nil {
		return nil, err
	}

	// Reject lengths the file cannot hold before allocating for them.
	if available := uint64(size-int64(n)) * shared.BitsPerByte; h.Length > available {
		return nil, fmt.Errorf("%w: %d bits declared, %d available, path: %v", ErrCorruptSnapshot, h.Length, available, path)
	}

	host := shared.Endian(h.HostEndian)
	b, err := bitstream.NewReader(r).ReadBuffer(int(h.Length),
		bitbuffer.WithHostEndian(host),
		bitbuffer.WithLogger(options.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	sum := sha256.Sum256(b.AlignedBytes())
	if !bytes.Equal(sum[:], h.Checksum) {
		return nil, fmt.Errorf("%w: path: %v", ErrChecksumMismatch, path)
	}

	options.logger.Info("bitbuffer snapshot loaded",
		zap.String("path", path),
		zap.Int("bits", b.Len()),
		zap.Stringer("host_endian", host),
	)
	return b, nil
}

func readHeader(r io.Reader, path string) (*header, int, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, 0, fmt.Errorf("%w: path: %v", ErrBadMagic, path)
	}
	if binary.BigEndian.Uint32(magic[:]) != Magic {
		return nil, 0, fmt.Errorf("%w: path: %v", ErrBadMagic, path)
	}

	h := &header{}
	n, err := xdr.Unmarshal(io.MultiReader(bytes.NewReader(magic[:]), r), h)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: header: %w", ErrCorruptSnapshot, err)
	}

	if h.Version != Version {
		return nil, 0, fmt.Errorf("%w: %w", ErrUnsupportedVersion, shared.ConfigMismatchError{
			Param:    "version",
			Expected: strconv.FormatUint(uint64(Version), 10),
			Found:    strconv.FormatUint(uint64(h.Version), 10),
			Path:     path,
		})
	}

	switch shared.Endian(h.HostEndian) {
	case shared.BigEndian, shared.LittleEndian:
	default:
		return nil, 0, fmt.Errorf("%w: %w: %v", ErrCorruptSnapshot, shared.ErrUnknownEndian, h.HostEndian)
	}

	return h, n, nil
}
