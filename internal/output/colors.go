package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorEnabled gates color output to interactive terminals.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// ColorRed colors text red
func ColorRed(text string) string {
	if !colorEnabled {
		return text
	}
	return redStyle.Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	if !colorEnabled {
		return text
	}
	return yellowStyle.Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	if !colorEnabled {
		return text
	}
	return cyanStyle.Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	if !colorEnabled {
		return text
	}
	return greenStyle.Render(text)
}
