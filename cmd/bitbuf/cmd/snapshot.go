package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuf/persistence"
)

func newSaveCmd(a *app) *cobra.Command {
	var enc, out string

	saveCmd := &cobra.Command{
		Use:   "save <value>",
		Short: "Save a value as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0], enc)
			if err != nil {
				return err
			}

			path := persistence.SnapshotPath(a.cfg.SnapshotDir, out)
			if err := persistence.Save(path, b, persistence.WithLogger(a.logger)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	saveCmd.Flags().StringVar(&enc, "enc", "", "Encoding of value (default: configured encoding)")
	saveCmd.Flags().StringVar(&out, "out", "", "Snapshot name, or path")
	_ = saveCmd.MarkFlagRequired("out")
	return saveCmd
}

func newLoadCmd(a *app) *cobra.Command {
	var to string

	loadCmd := &cobra.Command{
		Use:   "load <snapshot>",
		Short: "Print the value held by a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := persistence.SnapshotPath(a.cfg.SnapshotDir, args[0])
			b, err := persistence.Load(path, persistence.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return a.print(cmd, b, to)
		},
	}

	loadCmd.Flags().StringVar(&to, "to", "", "Encoding to print (default: configured encoding)")
	return loadCmd
}
