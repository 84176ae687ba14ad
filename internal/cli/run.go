// Package cli wires config, inputs and the printer into a bat run.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vishal1132/bat/internal/input"
	"github.com/vishal1132/bat/internal/output"
)

// Run renders the configured inputs to stdout.
// Returns exit code: 0 = all inputs rendered, 1 = some input failed.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	styles := output.NoStyles()
	if useColor {
		styles = output.NewStyles()
	}

	printer := output.NewPrinter(output.NewWriter(os.Stdout), styles, output.Options{
		ShowHeader:  cfg.ShowHeader,
		LineNumbers: cfg.LineNumbers,
		ShowBinary:  cfg.ShowBinary,
	})

	return run(cfg, printer, os.Stdin, logger)
}

func run(cfg Config, printer *output.Printer, stdin io.Reader, logger *log.Logger) int {
	failed := false
	for _, in := range BuildInputs(cfg) {
		opened, err := in.Open(stdin)
		if err != nil {
			if errors.Is(err, input.ErrIsDirectory) {
				logger.Error("cannot render a directory", "err", err)
			} else {
				logger.Error("cannot open input", "err", err)
			}
			failed = true
			continue
		}

		if err := printer.Print(opened); err != nil {
			logger.Warn("render failed", "input", opened.Description.Summary(), "err", err)
			failed = true
		}
		if cerr := opened.Close(); cerr != nil {
			logger.Warn("close failed", "input", opened.Description.Summary(), "err", cerr)
		}
	}

	if failed {
		return 1
	}
	return 0
}

// BuildInputs maps the config to input builders. No paths, or the path "-",
// means standard input.
func BuildInputs(cfg Config) []*input.Input {
	if cfg.ThemePreview {
		return []*input.Input{input.ThemePreview()}
	}
	if len(cfg.Paths) == 0 {
		return []*input.Input{input.Stdin()}
	}

	ins := make([]*input.Input, 0, len(cfg.Paths))
	for _, p := range cfg.Paths {
		if p == "-" {
			ins = append(ins, input.Stdin())
			continue
		}
		ins = append(ins, input.OrdinaryFile(p))
	}
	return ins
}
