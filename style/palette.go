package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/theme"
)

// Styles contains lipgloss styles derived from a theme's palette roles.
type Styles struct {
	Theme             theme.Theme
	Background        lipgloss.Style
	Shadow            lipgloss.Style
	View              lipgloss.Style
	Secondary         lipgloss.Style
	Tertiary          lipgloss.Style
	Title             lipgloss.Style
	Subtitle          lipgloss.Style
	Highlight         lipgloss.Style
	HighlightInactive lipgloss.Style
	Panel             lipgloss.Style
}

// FromTheme converts theme roles into lipgloss styles.
func FromTheme(t theme.Theme) Styles {
	p := t.Palette
	role := func(r palette.Role) lipgloss.TerminalColor {
		return p.Role(r).Lipgloss()
	}
	view := New().Foreground(role(palette.Primary)).Background(role(palette.View))

	return Styles{
		Theme:             t,
		Background:        New().Background(role(palette.Background)),
		Shadow:            New().Background(role(palette.Shadow)),
		View:              view,
		Secondary:         view.Foreground(role(palette.Secondary)),
		Tertiary:          view.Foreground(role(palette.Tertiary)),
		Title:             view.Foreground(role(palette.TitlePrimary)).Bold(true),
		Subtitle:          view.Foreground(role(palette.TitleSecondary)),
		Highlight:         New().Foreground(role(palette.HighlightText)).Background(role(palette.Highlight)),
		HighlightInactive: New().Foreground(role(palette.HighlightText)).Background(role(palette.HighlightInactive)),
		Panel:             view.Border(Border(t.Borders)).BorderForeground(role(palette.TitleSecondary)).BorderBackground(role(palette.View)),
	}
}

// Border maps a theme border style to the lipgloss border drawn for it.
func Border(b theme.BorderStyle) lipgloss.Border {
	switch b {
	case theme.BordersOutset:
		return lipgloss.ThickBorder()
	case theme.BordersNone:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
