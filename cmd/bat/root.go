package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishal1132/bat/internal/cli"
)

// Version information (set via ldflags during build)
var version = "dev"

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "bat [file...]",
	Short: "A cat clone with content detection",
	Long: `bat prints files to stdout with file headers and line numbers,
detecting binary and UTF-16LE content on the first line. With no
file, or when a file is -, it reads standard input.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolP("plain", "p", false, "suppress file headers")
	rootCmd.Flags().BoolP("number", "n", false, "show line numbers")
	rootCmd.Flags().Bool("show-binary", false, "print binary content instead of a notice")
	rootCmd.Flags().String("color", "auto", "when to use styled output: auto, always, never")
	rootCmd.Flags().Bool("preview-theme", false, "render the built-in theme preview snippet")
}

// Execute runs the root command with config-file arguments prepended.
func Execute(args []string) error {
	rootCmd.SetArgs(append(cli.LoadConfigArgs(), args...))
	return rootCmd.Execute()
}

// parseColor maps a --color flag value to a ColorMode.
func parseColor(s string) (cli.ColorMode, error) {
	switch s {
	case "auto":
		return cli.ColorAuto, nil
	case "always":
		return cli.ColorAlways, nil
	case "never":
		return cli.ColorNever, nil
	}
	return cli.ColorAuto, fmt.Errorf("invalid --color value: %q (expected auto, always or never)", s)
}

func runRoot(cmd *cobra.Command, args []string) error {
	plain, _ := cmd.Flags().GetBool("plain")
	number, _ := cmd.Flags().GetBool("number")
	showBinary, _ := cmd.Flags().GetBool("show-binary")
	colorFlag, _ := cmd.Flags().GetString("color")
	previewTheme, _ := cmd.Flags().GetBool("preview-theme")

	color, err := parseColor(colorFlag)
	if err != nil {
		return err
	}

	cfg := cli.Config{
		Paths:        args,
		ShowHeader:   !plain,
		LineNumbers:  number,
		ShowBinary:   showBinary,
		ThemePreview: previewTheme,
		Color:        color,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	exitCode = cli.Run(cfg)
	return nil
}
