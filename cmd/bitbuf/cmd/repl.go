package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spacemeshos/bitbuf/config"
)

const historyFileName = "history"

// lineReader is the part of readline.Instance the shell loop needs.
type lineReader interface {
	Readline() (string, error)
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run commands interactively",
		Long: `repl reads bitbuf commands line by line, e.g. "convert 1a --from hex",
until "exit" or end of input. Global flags given to repl apply to every
command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "bitbuf> ",
				HistoryFile:     filepath.Join(config.DefaultHomeDir, historyFileName),
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer rl.Close()

			return a.repl(cmd, rl)
		},
	}
}

func (a *app) repl(cmd *cobra.Command, rl lineReader) error {
	// Forward the global flags set on this invocation to every command.
	// Cobra parses them into the merged flag set of cmd, not the root's.
	persistent := cmd.Root().PersistentFlags()
	global := []string{"--config", a.configFile}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name == "config" || persistent.Lookup(f.Name) == nil {
			return
		}
		global = append(global, "--"+f.Name, f.Value.String())
	})

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return nil
		case "repl":
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: already in repl")
			continue
		}

		sub := newRootCmd()
		sub.SetOut(cmd.OutOrStdout())
		sub.SetErr(cmd.ErrOrStderr())
		sub.SetArgs(append(append([]string{}, global...), args...))
		if err := sub.Execute(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
	}
}
