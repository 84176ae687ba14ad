package cli

import "fmt"

// ColorMode controls when styled output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // style when stdout is a terminal
	ColorAlways                  // always style
	ColorNever                   // never style
)

// Config holds all configuration for a bat run.
type Config struct {
	Paths        []string
	ShowHeader   bool
	LineNumbers  bool
	ShowBinary   bool
	ThemePreview bool
	Color        ColorMode
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.ThemePreview && len(c.Paths) > 0 {
		return fmt.Errorf("cannot combine --preview-theme with file arguments")
	}
	return nil
}
