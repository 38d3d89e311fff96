package palette

import (
	"fmt"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/log"
)

// UnrecognizedNodeError reports a theme value that is neither a color, a list of colors nor a table.
// It is only ever logged; the offending entry is left out of the palette.
type UnrecognizedNodeError struct {
	Key   string
	Value any
}

func (e *UnrecognizedNodeError) Error() string {
	return fmt.Sprintf("unexpected value in theme: %s = %v (%T)", e.Key, e.Value, e.Value)
}

// warn receives every UnrecognizedNodeError raised while building.
var warn = func(err *UnrecognizedNodeError) {
	log.WarnWithFields(map[string]any{"key": err.Key}, err)
}

// BuildNode converts a decoded config value into a palette node.
//
// Strings become colors when they parse. Lists pick their first element that
// parses as a color. Tables become namespaces, even when none of their
// children survive. Anything else is reported and skipped.
func BuildNode(key string, value any) mo.Option[Node] {
	switch v := value.(type) {
	case string:
		return colorNode(color.Parse(v))
	case []string:
		return colorNode(firstColor(v))
	case []any:
		return colorNode(firstColor(lo.FilterMap(v, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})))
	case map[string]any:
		return mo.Some(NamespaceNode(buildNamespace(key, v)))
	default:
		warn(&UnrecognizedNodeError{Key: key, Value: value})
		return mo.None[Node]()
	}
}

func buildNamespace(prefix string, table map[string]any) Namespace {
	ns := make(Namespace, len(table))
	for name, value := range table {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if node, ok := BuildNode(path, value).Get(); ok {
			ns[name] = node
		}
	}
	return ns
}

func firstColor(candidates []string) mo.Option[color.Color] {
	for _, candidate := range candidates {
		if c, ok := color.Parse(candidate).Get(); ok {
			return mo.Some(c)
		}
	}
	return mo.None[color.Color]()
}

func colorNode(c mo.Option[color.Color]) mo.Option[Node] {
	if value, ok := c.Get(); ok {
		return mo.Some(ColorNode(value))
	}
	return mo.None[Node]()
}

// LoadTable fills p from a decoded table.
//
// Colors are installed with SetColor, so top-level names matching a role
// update that role. Tables are installed with AddNamespace.
func (p *Palette) LoadTable(table map[string]any) {
	keys := lo.Keys(table)
	slices.Sort(keys)

	for _, key := range keys {
		node, ok := BuildNode(key, table[key]).Get()
		if !ok {
			continue
		}
		if c, ok := node.Color().Get(); ok {
			p.SetColor(key, c)
		} else {
			p.AddNamespace(key, node.namespace)
		}
	}
}

// LoadTOML decodes a TOML document and fills p from its root table.
// Only syntax errors are returned; unusable values are skipped.
func (p *Palette) LoadTOML(data []byte) error {
	var table map[string]any
	if err := toml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decode palette: %w", err)
	}
	p.LoadTable(table)
	return nil
}
