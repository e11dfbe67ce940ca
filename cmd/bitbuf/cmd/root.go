package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbuf/bitbuffer"
	"github.com/spacemeshos/bitbuf/config"
)

var (
	Version string
	Commit  string
)

// app holds the state shared by all commands of one invocation.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "bitbuf",
		Short: "Inspect and transform bit buffers",
		Long: `bitbuf decodes binary and hex strings into bit buffers, and
converts, shifts, decodes numbers from and snapshots them.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", config.DefaultConfigFile, "Path to configuration file")
	flags.String("encoding", a.cfg.Encoding, "Default encoding of values (binary, hex)")
	flags.String("host-endian", a.cfg.HostEndian, "Byte order buffers are laid out in (host, be, le)")
	flags.String("log-level", a.cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("snapshot-dir", a.cfg.SnapshotDir, "Directory snapshots are saved to and loaded from")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newReadCmd(a),
		newDumpCmd(a),
		newShiftCmd(a),
		newInfoCmd(a),
		newSaveCmd(a),
		newLoadCmd(a),
		newConfigCmd(a),
		newReplCmd(a),
	)
	return rootCmd
}

// wordSepNormalizeFunc accepts "log_level" and "log.level" for "log-level".
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.NewReplacer("_", "-", ".", "-").Replace(name))
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func (a *app) load(cmd *cobra.Command) error {
	vip := viper.New()
	if err := loadConfigFile(smutil.GetCanonicalPath(a.configFile), vip); err != nil {
		return err
	}

	// Flags set on the command line take precedence over the config file.
	if err := vip.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.SnapshotDir = smutil.GetCanonicalPath(cfg.SnapshotDir)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(level, cmd.ErrOrStderr())
	a.logger.Debug("config loaded",
		zap.String("file", vip.ConfigFileUsed()),
		zap.String("encoding", cfg.Encoding),
		zap.String("host_endian", cfg.HostEndian),
		zap.String("snapshot_dir", cfg.SnapshotDir),
	)
	return nil
}

// loadConfigFile reads fileLocation into vip. A missing default config file
// is not an error.
func loadConfigFile(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = config.DefaultConfigFile
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if fileLocation == config.DefaultConfigFile && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// encoding returns the encoding named by name, or the configured one when
// name is empty.
func (a *app) encoding(name string) (bitbuffer.Encoding, error) {
	if name == "" {
		return a.cfg.EncodingValue()
	}
	return bitbuffer.ParseEncoding(name)
}

// decode parses value in the encoding named by encName.
func (a *app) decode(value, encName string) (*bitbuffer.Buffer, error) {
	enc, err := a.encoding(encName)
	if err != nil {
		return nil, err
	}
	return bitbuffer.FromString(value, enc, a.cfg.BufferOptions(a.logger)...)
}

func (a *app) print(cmd *cobra.Command, b *bitbuffer.Buffer, encName string) error {
	enc, err := a.encoding(encName)
	if err != nil {
		return err
	}
	s, err := b.Encode(enc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
