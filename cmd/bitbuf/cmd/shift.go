package cmd

import (
	"github.com/spf13/cobra"
)

func newShiftCmd(a *app) *cobra.Command {
	var (
		enc string
		by  int
	)

	shiftCmd := &cobra.Command{
		Use:   "shift <value>",
		Short: "Shift the bits of a value",
		Long: `shift moves the bits of value by --by positions. Positive amounts shift
right, towards bit 0, and negative amounts shift left. The length of the
value is kept: bits shifted out are dropped and exposed bits are zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0], enc)
			if err != nil {
				return err
			}
			return a.print(cmd, b.ShiftRight(by), enc)
		},
	}

	shiftCmd.Flags().StringVar(&enc, "enc", "", "Encoding of value (default: configured encoding)")
	shiftCmd.Flags().IntVar(&by, "by", 0, "Number of positions to shift; negative shifts left")
	return shiftCmd
}
