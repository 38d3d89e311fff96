package color

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/mo"
)

// ParseBase resolves a base color from its name.
func ParseBase(name string) (Base, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range baseNames {
		if n == name {
			return Base(i), true
		}
	}
	return 0, false
}

// Parse reads a color from text.
//
// Accepted forms, case-insensitive:
//
//	default, terminal_default
//	red, dark red, light red
//	#rgb, #rrggbb, 0xrrggbb
//	125 (three digits 0-5, the 6x6x6 cube)
func Parse(text string) mo.Option[Color] {
	s := strings.ToLower(strings.TrimSpace(text))

	switch s {
	case "default", "terminal_default", "terminal default":
		return mo.Some(TerminalDefault())
	}

	if b, ok := ParseBase(s); ok {
		return mo.Some(Dark(b))
	}
	if rest, ok := strings.CutPrefix(s, "light "); ok {
		if b, ok := ParseBase(rest); ok {
			return mo.Some(Light(b))
		}
		return mo.None[Color]()
	}
	if rest, ok := strings.CutPrefix(s, "dark "); ok {
		if b, ok := ParseBase(rest); ok {
			return mo.Some(Dark(b))
		}
		return mo.None[Color]()
	}

	if digits, ok := cutHexPrefix(s); ok {
		return parseHex(digits)
	}

	if isLowRes(s) {
		return mo.Some(RgbLowRes(s[0]-'0', s[1]-'0', s[2]-'0'))
	}

	return mo.None[Color]()
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0x")
}

func parseHex(digits string) mo.Option[Color] {
	if len(digits) != 3 && len(digits) != 6 {
		return mo.None[Color]()
	}
	if strings.Trim(digits, "0123456789abcdef") != "" {
		return mo.None[Color]()
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return mo.None[Color]()
	}
	r, g, b := c.RGB255()
	return mo.Some(Rgb(r, g, b))
}

func isLowRes(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '5' {
			return false
		}
	}
	return true
}
