package output

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	colorsOnce    sync.Once
	colorsEnabled bool
)

// ColorsEnabled reports whether styled output should be produced: stdout
// must be a terminal and the terminal must advertise a color profile.
// NO_COLOR is honored through termenv's EnvColorProfile.
func ColorsEnabled() bool {
	colorsOnce.Do(func() {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return
		}
		colorsEnabled = termenv.EnvColorProfile() != termenv.Ascii
	})
	return colorsEnabled
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// OK renders text in the success color.
func OK(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return okStyle.Render(text)
}

// Bad renders text in the failure color.
func Bad(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return badStyle.Render(text)
}

// Dim renders text faint.
func Dim(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return dimStyle.Render(text)
}

// WarnPrefix returns the prefix for console warning lines.
func WarnPrefix() string {
	if !ColorsEnabled() {
		return "warning: "
	}
	return warnStyle.Render("warning:") + " "
}

// ErrorPrefix returns the prefix for console error lines.
func ErrorPrefix() string {
	if !ColorsEnabled() {
		return "error: "
	}
	return badStyle.Render("error:") + " "
}
