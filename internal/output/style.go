package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for rendered output.
type Styles struct {
	Header  lipgloss.Style
	LineNum lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true), // blue
		LineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),            // bright black
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true), // yellow
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		LineNum: lipgloss.NewStyle(),
		Notice:  lipgloss.NewStyle(),
	}
}
