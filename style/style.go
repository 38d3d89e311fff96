// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tinct-cli/tinct/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg color.Color) lipgloss.Style {
	return New().Foreground(fg.Lipgloss()).Background(bg.Lipgloss())
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c color.Color) func(string) string {
	return func(s string) string { return Colored(c, color.TerminalDefault()).Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c color.Color) func(string) string {
	return func(s string) string { return Colored(color.TerminalDefault(), c).Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Tag returns a rendering function that encapsulates a string in a colored, padded tag block.
func Tag(fg, bg color.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Swatch renders a block of the given width filled with c.
func Swatch(c color.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return Bg(c)(strings.Repeat(" ", width))
}
