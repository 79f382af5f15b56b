package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"uast/internal/config"
	"uast/internal/diag"
	"uast/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uast",
	Short: "Generic syntax tree toolkit",
	Long:  `uast inspects, validates and converts language-independent syntax trees`,
}

// loadedConfig holds the manifest discovered before flag parsing; flags
// set explicitly on the command line override it.
var loadedConfig = config.Default()

func main() {
	rootCmd.Version = version.Version

	if cfg, err := config.Discover(mustGetwd()); err != nil {
		// A broken manifest is reported but not fatal; flags still work.
		diag.Render(os.Stderr, config.Problem(err), nil)
	} else {
		loadedConfig = cfg
	}

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(spanCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	rootCmd.PersistentFlags().String("color", loadedConfig.Output.Color, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", loadedConfig.Output.Quiet, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", loadedConfig.Run.Jobs, "parallel file limit (0 = number of CPUs)")
	rootCmd.PersistentFlags().Int("max-diagnostics", loadedConfig.Run.MaxDiagnostics, "maximum number of diagnostics to show")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyColorMode(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// applyColorMode resolves the tri-state color flag against the terminal.
func applyColorMode(cmd *cobra.Command) {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
