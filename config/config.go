package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbuf/bitbuffer"
	"github.com/spacemeshos/bitbuf/shared"
)

const (
	DefaultDirName         = ".bitbuf"
	DefaultConfigFileName  = "bitbuf.yaml"
	DefaultSnapshotDirName = "snapshots"

	DefaultEncoding   = "binary"
	DefaultHostEndian = "host"
	DefaultLogLevel   = "info"
)

var (
	DefaultHomeDir     = filepath.Join(smutil.GetUserHomeDirectory(), DefaultDirName)
	DefaultConfigFile  = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
	DefaultSnapshotDir = filepath.Join(DefaultHomeDir, DefaultSnapshotDirName)
)

type Config struct {
	// Encoding of values given to and printed by the CLI.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	// HostEndian pins the byte order buffers are assumed to be laid out in.
	// "host" uses the executing platform's.
	HostEndian  string `mapstructure:"host-endian" yaml:"host-endian"`
	LogLevel    string `mapstructure:"log-level" yaml:"log-level"`
	SnapshotDir string `mapstructure:"snapshot-dir" yaml:"snapshot-dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Encoding:    DefaultEncoding,
		HostEndian:  DefaultHostEndian,
		LogLevel:    DefaultLogLevel,
		SnapshotDir: DefaultSnapshotDir,
	}
}

func (cfg *Config) Validate() error {
	if !bitbuffer.IsEncoding(cfg.Encoding) {
		return fmt.Errorf("invalid `Encoding`; expected: binary or hex, given: %q", cfg.Encoding)
	}

	if _, err := cfg.Endian(); err != nil {
		return fmt.Errorf("invalid `HostEndian`; expected: host, be or le, given: %q", cfg.HostEndian)
	}

	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	if cfg.SnapshotDir == "" {
		return fmt.Errorf("invalid `SnapshotDir`; expected: a directory, given: %q", cfg.SnapshotDir)
	}

	return nil
}

// EncodingValue returns the configured encoding.
func (cfg *Config) EncodingValue() (bitbuffer.Encoding, error) {
	return bitbuffer.ParseEncoding(cfg.Encoding)
}

// Endian returns the configured host byte order.
func (cfg *Config) Endian() (shared.Endian, error) {
	return shared.ParseEndian(cfg.HostEndian)
}

func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}

// BufferOptions returns the options buffers created under cfg are built with.
func (cfg *Config) BufferOptions(logger *zap.Logger) []bitbuffer.Option {
	opts := []bitbuffer.Option{bitbuffer.WithLogger(logger)}
	if endian, err := cfg.Endian(); err == nil {
		opts = append(opts, bitbuffer.WithHostEndian(endian))
	}
	return opts
}
