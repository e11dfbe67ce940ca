package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spacemeshos/bitbuf/bitbuffer"
	"github.com/spacemeshos/bitbuf/shared"
)

type decoding struct {
	Kind   string `yaml:"kind"`
	Width  int    `yaml:"width"`
	Endian string `yaml:"endian"`
	Value  string `yaml:"value"`
}

type format struct {
	kind  bitbuffer.Kind
	width int
}

var dumpFormats = []format{
	{bitbuffer.Uint, 8}, {bitbuffer.Int, 8},
	{bitbuffer.Uint, 16}, {bitbuffer.Int, 16},
	{bitbuffer.Uint, 32}, {bitbuffer.Int, 32},
	{bitbuffer.Uint, 64}, {bitbuffer.Int, 64},
	{bitbuffer.Float, 32}, {bitbuffer.Double, 64},
}

// decodeAll decodes every format that fits in b at offset.
func decodeAll(b *bitbuffer.Buffer, offset int) ([]decoding, error) {
	var out []decoding
	for _, f := range dumpFormats {
		endians := []shared.Endian{shared.BigEndian, shared.LittleEndian}
		if f.width == 8 {
			endians = endians[:1]
		}
		for _, endian := range endians {
			if offset+f.width > b.Len() {
				continue
			}
			v, err := b.Read(f.kind, f.width, endian, offset, 0)
			if err != nil {
				return nil, err
			}
			out = append(out, decoding{
				Kind:   f.kind.String(),
				Width:  f.width,
				Endian: endian.String(),
				Value:  v.String(),
			})
		}
	}
	return out, nil
}

func newDumpCmd(a *app) *cobra.Command {
	var (
		enc, output string
		offset      int
	)

	dumpCmd := &cobra.Command{
		Use:   "dump <value>",
		Short: "Decode a value as every supported number format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.decode(args[0], enc)
			if err != nil {
				return err
			}
			if offset < 0 || offset > b.Len() {
				return bitbuffer.RangeError{Op: "dump", Start: offset, End: offset, Len: b.Len()}
			}

			rows, err := decodeAll(b, offset)
			if err != nil {
				return err
			}

			switch output {
			case "table":
				data := make([][]string, 0, len(rows))
				for _, r := range rows {
					data = append(data, []string{r.Kind, strconv.Itoa(r.Width), r.Endian, r.Value})
				}
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.SetHeader([]string{"kind", "width", "endian", "value"})
				table.SetBorder(true)
				table.AppendBulk(data)
				table.Render()
				return nil
			case "yaml":
				out, err := yaml.Marshal(rows)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			default:
				return fmt.Errorf("invalid `format`; expected: table or yaml, given: %q", output)
			}
		},
	}

	flags := dumpCmd.Flags()
	flags.StringVar(&enc, "enc", "", "Encoding of value (default: configured encoding)")
	flags.IntVar(&offset, "offset", 0, "Index of the first bit to decode")
	flags.StringVar(&output, "format", "table", "Output format (table, yaml)")
	return dumpCmd
}
