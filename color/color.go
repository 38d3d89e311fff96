// Package color defines the terminal color value resolved by palettes, along with its textual grammar.
package color

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Base is one of the eight basic terminal colors.
type Base uint8

const (
	Black Base = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// BaseCount is the number of basic terminal colors.
const BaseCount = 8

var baseNames = [BaseCount]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// String returns the lowercase name of the base color.
func (b Base) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return fmt.Sprintf("base(%d)", uint8(b))
}

type kind uint8

const (
	kindDefault kind = iota
	kindDark
	kindLight
	kindRgb
	kindLowRes
)

// Color is a concrete terminal color. The zero value is the terminal default.
//
// Colors are comparable with ==.
type Color struct {
	kind    kind
	base    Base
	r, g, b uint8
}

// TerminalDefault keeps whatever color the terminal uses by default.
func TerminalDefault() Color {
	return Color{}
}

// Dark returns the regular variant of a base color.
func Dark(b Base) Color {
	return Color{kind: kindDark, base: b}
}

// Light returns the bright variant of a base color.
func Light(b Base) Color {
	return Color{kind: kindLight, base: b}
}

// Rgb returns a true color.
func Rgb(r, g, b uint8) Color {
	return Color{kind: kindRgb, r: r, g: g, b: b}
}

// RgbLowRes returns a color from the 6x6x6 cube. Channels are clamped to 0..5.
func RgbLowRes(r, g, b uint8) Color {
	return Color{kind: kindLowRes, r: min(r, 5), g: min(g, 5), b: min(b, 5)}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.kind == kindDefault
}

// String renders c in the same grammar accepted by Parse.
func (c Color) String() string {
	switch c.kind {
	case kindDark:
		return c.base.String()
	case kindLight:
		return "light " + c.base.String()
	case kindRgb:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case kindLowRes:
		return fmt.Sprintf("%d%d%d", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// Lipgloss converts c into a color usable with lipgloss styles.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.kind {
	case kindDark:
		return lipgloss.Color(strconv.Itoa(int(c.base)))
	case kindLight:
		return lipgloss.Color(strconv.Itoa(int(c.base) + BaseCount))
	case kindRgb:
		return lipgloss.Color(c.String())
	case kindLowRes:
		return lipgloss.Color(strconv.Itoa(16 + 36*int(c.r) + 6*int(c.g) + int(c.b)))
	default:
		return lipgloss.NoColor{}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text)).Get()
	if !ok {
		return fmt.Errorf("invalid color %q", string(text))
	}
	*c = parsed
	return nil
}
