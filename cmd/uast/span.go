package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uast/internal/gast"
)

var spanCmd = &cobra.Command{
	Use:   "span [flags] file...",
	Short: "Print the covering byte range of each tree",
	Long: `Span scans every real token in the tree and prints the minimal byte
range covering them all. Trees built entirely from synthetic tokens have
no range.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpan,
}

func runSpan(cmd *cobra.Command, args []string) error {
	dc := openCache()
	out := cmd.OutOrStdout()

	for _, path := range args {
		p, err := loadTree(path, dc)
		if err != nil {
			return err
		}
		sp, ok := gast.ProgramRange(p)
		if !ok {
			fmt.Fprintf(out, "%s: no source-derived tokens\n", path)
			continue
		}
		fmt.Fprintf(out, "%s: file %d bytes [%d,%d) len %d\n", path, sp.File, sp.Start, sp.End, sp.Len())
	}
	return nil
}
