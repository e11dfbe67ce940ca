package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuf/bitbuffer"
	"github.com/spacemeshos/bitbuf/shared"
)

func newReadCmd(a *app) *cobra.Command {
	var (
		enc, kind, endian   string
		width, offset, bits int
	)

	readCmd := &cobra.Command{
		Use:   "read <value>",
		Short: "Decode a number from a value",
		Long: `read decodes a number of the given kind and width, in the given byte
order, from the bits of value starting at offset. With --bits set lower
than the width, only that many bits are read, and signed integers are
sign-extended.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0], enc)
			if err != nil {
				return err
			}
			k, err := bitbuffer.ParseKind(kind)
			if err != nil {
				return err
			}
			e, err := shared.ParseEndian(endian)
			if err != nil {
				return err
			}

			v, err := b.Read(k, width, e, offset, bits)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	flags := readCmd.Flags()
	flags.StringVar(&enc, "enc", "", "Encoding of value (default: configured encoding)")
	flags.StringVar(&kind, "kind", "uint", "Kind of number (uint, int, float, double)")
	flags.IntVar(&width, "width", 8, "Width of the number in bits (8, 16, 32, 64); ignored for float and double")
	flags.StringVar(&endian, "endian", "be", "Byte order of the number (be, le)")
	flags.IntVar(&offset, "offset", 0, "Index of the first bit to read")
	flags.IntVar(&bits, "bits", 0, "Number of bits to read (default: width)")
	return readCmd
}
