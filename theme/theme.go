// Package theme loads complete theme files: the palette plus the toolkit's shadow and border settings.
package theme

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/log"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/where"
)

// BorderStyle describes how view borders are drawn.
type BorderStyle string

const (
	BordersNone   BorderStyle = "none"
	BordersSimple BorderStyle = "simple"
	BordersOutset BorderStyle = "outset"
)

// ParseBorderStyle validates a border style name.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch style := BorderStyle(strings.ToLower(strings.TrimSpace(name))); style {
	case BordersNone, BordersSimple, BordersOutset:
		return style, nil
	default:
		return "", fmt.Errorf("unknown border style %q", name)
	}
}

// Theme is the visual configuration of an application.
type Theme struct {
	Shadow  bool
	Borders BorderStyle
	Palette *palette.Palette
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Shadow:  true,
		Borders: BordersSimple,
		Palette: palette.New(),
	}
}

// SettingError reports a theme setting whose value cannot be used.
// It is only ever logged; the setting keeps its fallback value.
type SettingError struct {
	Key    string
	Value  any
	Reason string
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("ignoring theme setting %s = %v (%T): %s", e.Key, e.Value, e.Value, e.Reason)
}

// warn receives every SettingError raised while loading.
var warn = func(err *SettingError) {
	log.WarnWithFields(map[string]any{"key": err.Key}, err)
}

// Load parses a TOML theme on top of the default theme.
// Settings missing from data keep their default value. Settings of the wrong
// type are reported and skipped, and an unknown border style falls back to
// BordersNone. Only malformed TOML is returned as an error.
func Load(data []byte) (Theme, error) {
	t := Default()

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return t, fmt.Errorf("decode theme: %w", err)
	}

	if value, ok := doc["shadow"]; ok {
		if shadow, ok := value.(bool); ok {
			t.Shadow = shadow
		} else {
			warn(&SettingError{Key: "shadow", Value: value, Reason: "expected a boolean"})
		}
	}

	if value, ok := doc["borders"]; ok {
		t.Borders = bordersSetting(value)
	}

	if value, ok := doc["colors"]; ok {
		if table, ok := value.(map[string]any); ok {
			t.Palette.LoadTable(table)
		} else {
			warn(&SettingError{Key: "colors", Value: value, Reason: "expected a table"})
		}
	}

	return t, nil
}

func bordersSetting(value any) BorderStyle {
	name, ok := value.(string)
	if !ok {
		warn(&SettingError{Key: "borders", Value: value, Reason: "expected a string"})
		return BordersNone
	}

	borders, err := ParseBorderStyle(name)
	if err != nil {
		warn(&SettingError{Key: "borders", Value: value, Reason: err.Error()})
		return BordersNone
	}
	return borders
}

// LoadFile reads and parses the theme file at path.
func LoadFile(path string) (Theme, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read theme %s: %w", path, err)
	}

	t, err := Load(data)
	if err != nil {
		return t, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// Find resolves a theme name to a file path.
// Absolute paths and names with an extension are used as is; bare names are
// looked up in the themes directory.
func Find(name string) string {
	if filepath.IsAbs(name) || filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(where.Themes(), name+".toml")
}

// WithNamespace returns a copy of t whose palette has the namespace merged in.
func (t Theme) WithNamespace(name string) Theme {
	t.Palette = t.Palette.Merge(name)
	return t
}
