package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinct-cli/tinct/color"
)

// ErrNoSuchRole is returned when a name does not resolve to a built-in Role.
var ErrNoSuchRole = errors.New("no such palette role")

// Role is a built-in color purpose used throughout the toolkit.
type Role int

const (
	// Background is the application background.
	Background Role = iota
	// Shadow is used for view shadows.
	Shadow
	// View is used for view backgrounds.
	View
	// Primary is the main text color.
	Primary
	// Secondary is the secondary text color.
	Secondary
	// Tertiary is the tertiary text color.
	Tertiary
	// TitlePrimary is the main title color.
	TitlePrimary
	// TitleSecondary is the secondary title color.
	TitleSecondary
	// Highlight is the background of highlighted text.
	Highlight
	// HighlightInactive is the background of highlighted text in an unfocused view.
	HighlightInactive
	// HighlightText is the foreground of highlighted text.
	HighlightText
)

// RoleCount is the number of built-in roles.
const RoleCount = int(HighlightText) + 1

var roleNames = [RoleCount]struct{ name, alias string }{
	Background:        {"Background", "background"},
	Shadow:            {"Shadow", "shadow"},
	View:              {"View", "view"},
	Primary:           {"Primary", "primary"},
	Secondary:         {"Secondary", "secondary"},
	Tertiary:          {"Tertiary", "tertiary"},
	TitlePrimary:      {"TitlePrimary", "title_primary"},
	TitleSecondary:    {"TitleSecondary", "title_secondary"},
	Highlight:         {"Highlight", "highlight"},
	HighlightInactive: {"HighlightInactive", "highlight_inactive"},
	HighlightText:     {"HighlightText", "highlight_text"},
}

// Roles returns every built-in role in declaration order.
func Roles() []Role {
	roles := make([]Role, RoleCount)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// Valid reports whether r is one of the built-in roles.
func (r Role) Valid() bool {
	return r >= 0 && int(r) < RoleCount
}

// String returns the PascalCase name of the role.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r].name
}

// Alias returns the snake_case spelling of the role.
func (r Role) Alias() string {
	if !r.Valid() {
		return ""
	}
	return roleNames[r].alias
}

// Resolve returns the color assigned to r in p.
func (r Role) Resolve(p *Palette) color.Color {
	return p.Role(r)
}

// ParseRole classifies name as a built-in role.
// Both the PascalCase name and the snake_case alias are accepted, ignoring case.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if strings.EqualFold(name, n.name) || strings.EqualFold(name, n.alias) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoSuchRole, name)
}
