package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"uast/internal/gast"
	"uast/internal/gast/wire"
)

var (
	convertOut  string
	convertFrom string
	convertTo   string
)

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "output path (default: input with the target extension)")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "input format (json|msgpack); detected when omitted")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "output format (json|msgpack); detected from -o when omitted")
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file",
	Short: "Convert a tree between JSON and msgpack",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	from := detectFormat(path, data)
	if convertFrom != "" {
		if from, err = parseFormat(convertFrom); err != nil {
			return err
		}
	}

	to, out, err := resolveTarget(path, from)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("input is already %s", from)
	}

	p, err := decodeAs(from, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	encoded, err := encodeAs(to, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) -> %s (%s)\n", path, from, out, to)
	}
	return nil
}

// resolveTarget works out the output format and path from -o, --to, and
// the input format, in that priority order.
func resolveTarget(in string, from treeFormat) (treeFormat, string, error) {
	to := formatJSON
	if from == formatJSON {
		to = formatBinary
	}
	if convertTo != "" {
		var err error
		if to, err = parseFormat(convertTo); err != nil {
			return to, "", err
		}
	}

	out := convertOut
	if out == "" {
		ext := ".json"
		if to == formatBinary {
			ext = ".mp"
		}
		base := in[:len(in)-len(filepath.Ext(in))]
		out = base + ext
	} else if convertTo == "" {
		to = detectFormat(out, nil)
	}
	return to, out, nil
}

func decodeAs(f treeFormat, data []byte) (*gast.Program, error) {
	if f == formatJSON {
		return wire.DecodeJSON(data)
	}
	return wire.DecodeBinary(data)
}

func encodeAs(f treeFormat, p *gast.Program) ([]byte, error) {
	if f == formatJSON {
		return wire.EncodeJSON(p)
	}
	return wire.EncodeBinary(p)
}
