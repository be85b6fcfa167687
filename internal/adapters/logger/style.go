package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	slate  = lipgloss.Color("#667085")
	red    = lipgloss.Color("#D93025")
	yellow = lipgloss.Color("#F59E0B")
	iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	iconCross   = "✗"
	iconWarning = "!"
	iconDot     = "·"
)

// colorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// newOutput creates a termenv.Output for w with the profile from colorProfile.
func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true))
}
