package cmd

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuf/persistence"
)

func newInfoCmd(a *app) *cobra.Command {
	var enc string

	infoCmd := &cobra.Command{
		Use:   "info <value>",
		Short: "Print the size and layout of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0], enc)
			if err != nil {
				return err
			}

			numBytes, numFiles, err := persistence.NumBytesWritten(a.cfg.SnapshotDir)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "length: %d bits\n", b.Len())
			fmt.Fprintf(w, "storage: %s\n", bytefmt.ByteSize(uint64(len(b.Bytes()))))
			fmt.Fprintf(w, "host endian: %v\n", b.HostEndian())
			fmt.Fprintf(w, "snapshots: %d (%s) in %s\n", numFiles, bytefmt.ByteSize(numBytes), a.cfg.SnapshotDir)
			return nil
		},
	}

	infoCmd.Flags().StringVar(&enc, "enc", "", "Encoding of value (default: configured encoding)")
	return infoCmd
}
