// Package palette maps the toolkit's built-in color roles to concrete colors
// and holds a tree of custom, theme-defined colors grouped in namespaces.
//
// A Palette is not safe for concurrent mutation. Merge returns a deep copy,
// so a merged palette never aliases the one it was derived from.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinct-cli/tinct/color"
)

// Palette assigns a color to every built-in role and carries custom entries.
type Palette struct {
	basic  [RoleCount]color.Color
	custom Namespace
}

var defaultBasic = [RoleCount]color.Color{
	Background:        color.Dark(color.Blue),
	Shadow:            color.Dark(color.Black),
	View:              color.Dark(color.White),
	Primary:           color.Dark(color.Black),
	Secondary:         color.Dark(color.Blue),
	Tertiary:          color.Light(color.White),
	TitlePrimary:      color.Dark(color.Red),
	TitleSecondary:    color.Light(color.Blue),
	Highlight:         color.Dark(color.Red),
	HighlightInactive: color.Dark(color.Blue),
	HighlightText:     color.Dark(color.White),
}

// New returns the default palette with no custom entries.
func New() *Palette {
	return &Palette{
		basic:  defaultBasic,
		custom: Namespace{},
	}
}

// Role returns the color assigned to a built-in role.
// It panics when r is not one of Roles().
func (p *Palette) Role(r Role) color.Color {
	return p.basic[r]
}

// SetRole overwrites the color assigned to a built-in role.
// It panics when r is not one of Roles().
func (p *Palette) SetRole(r Role, c color.Color) {
	p.basic[r] = c
}

// Custom returns the custom color stored under name.
// Missing names and namespaces both yield None.
func (p *Palette) Custom(name string) mo.Option[color.Color] {
	node, ok := p.custom[name]
	if !ok {
		return mo.None[color.Color]()
	}
	return node.Color()
}

// CustomNode returns the raw custom entry stored under name.
func (p *Palette) CustomNode(name string) mo.Option[Node] {
	node, ok := p.custom[name]
	return mo.TupleToOption(node, ok)
}

// CustomNames returns the top-level custom keys in sorted order.
func (p *Palette) CustomNames() []string {
	return p.custom.Keys()
}

// Resolve looks name up as a role first, then as a custom color.
func (p *Palette) Resolve(name string) mo.Option[color.Color] {
	if r, err := ParseRole(name); err == nil {
		return mo.Some(p.basic[r])
	}
	return p.Custom(name)
}

// SetColor sets the color for name.
// Names that resolve to a role update that role; anything else becomes a custom color.
func (p *Palette) SetColor(name string, c color.Color) {
	if err := p.SetBasicColor(name, c); errors.Is(err, ErrNoSuchRole) {
		p.customs()[name] = ColorNode(c)
	}
}

// SetBasicColor sets a role color from the role's name or alias.
// It returns ErrNoSuchRole when name is not a role.
func (p *Palette) SetBasicColor(name string, c color.Color) error {
	r, err := ParseRole(name)
	if err != nil {
		return err
	}
	p.basic[r] = c
	return nil
}

// AddNamespace stores a copy of ns under name, replacing any previous entry.
func (p *Palette) AddNamespace(name string, ns Namespace) {
	p.customs()[name] = NamespaceNode(ns.Clone())
}

// Namespaces returns the top-level custom keys holding a namespace, in sorted order.
func (p *Palette) Namespaces() []string {
	return lo.Filter(p.custom.Keys(), func(name string, _ int) bool {
		return p.custom[name].IsNamespace()
	})
}

// customs lazily allocates the custom tree so a zero Palette is usable.
func (p *Palette) customs() Namespace {
	if p.custom == nil {
		p.custom = Namespace{}
	}
	return p.custom
}

// Merge returns a copy of p with the namespace stored under name applied on top.
//
// Colors in the namespace go through SetColor. Nested namespaces replace any
// existing entry of the same name as a whole; their contents are not combined.
// If name is missing or is not a namespace, the copy is returned unchanged.
func (p *Palette) Merge(name string) *Palette {
	result := p.Clone()

	node, ok := p.custom[name]
	if !ok || !node.IsNamespace() {
		return result
	}

	for _, key := range node.namespace.Keys() {
		value := node.namespace[key]
		if c, ok := value.Color().Get(); ok {
			result.SetColor(key, c)
			continue
		}
		result.AddNamespace(key, value.namespace)
	}

	return result
}

// Extend sets role colors in order. Later entries for the same role win.
// Like SetRole, it panics on a role outside Roles().
func (p *Palette) Extend(entries ...lo.Entry[Role, color.Color]) {
	for _, e := range entries {
		p.basic[e.Key] = e.Value
	}
}

// Clone returns a deep copy of p.
func (p *Palette) Clone() *Palette {
	return &Palette{
		basic:  p.basic,
		custom: p.custom.Clone(),
	}
}

// Equal reports whether both palettes hold the same roles and custom tree.
func (p *Palette) Equal(other *Palette) bool {
	return p.basic == other.basic && p.custom.Equal(other.custom)
}

// String renders the palette as an indented listing, roles first.
func (p *Palette) String() string {
	var b strings.Builder
	for _, r := range Roles() {
		fmt.Fprintf(&b, "%s = %s\n", r.Alias(), p.basic[r])
	}
	writeNamespace(&b, p.custom, 0)
	return b.String()
}

func writeNamespace(b *strings.Builder, ns Namespace, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range ns.Keys() {
		node := ns[key]
		if c, ok := node.Color().Get(); ok {
			fmt.Fprintf(b, "%s%s = %s\n", indent, key, c)
			continue
		}
		fmt.Fprintf(b, "%s[%s]\n", indent, key)
		writeNamespace(b, node.namespace, depth+1)
	}
}
