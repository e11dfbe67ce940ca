package cmd

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string

	convertCmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value between encodings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0], from)
			if err != nil {
				return err
			}
			return a.print(cmd, b, to)
		},
	}

	convertCmd.Flags().StringVar(&from, "from", "", "Encoding of value (default: configured encoding)")
	convertCmd.Flags().StringVar(&to, "to", "hex", "Encoding to print")
	return convertCmd
}
