package palette

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinct-cli/tinct/color"
)

// Namespace is a group of custom entries keyed by name.
type Namespace map[string]Node

// Node is a custom palette entry: either a single color or a nested namespace.
type Node struct {
	color     color.Color
	namespace Namespace
	isNS      bool
}

// ColorNode wraps a single color.
func ColorNode(c color.Color) Node {
	return Node{color: c}
}

// NamespaceNode wraps a namespace. A nil namespace becomes an empty one.
func NamespaceNode(ns Namespace) Node {
	if ns == nil {
		ns = Namespace{}
	}
	return Node{namespace: ns, isNS: true}
}

// IsNamespace reports whether the node holds a namespace.
func (n Node) IsNamespace() bool {
	return n.isNS
}

// Color returns the node's color, if it holds one.
func (n Node) Color() mo.Option[color.Color] {
	if n.isNS {
		return mo.None[color.Color]()
	}
	return mo.Some(n.color)
}

// Namespace returns the node's namespace, if it holds one.
func (n Node) Namespace() mo.Option[Namespace] {
	if !n.isNS {
		return mo.None[Namespace]()
	}
	return mo.Some(n.namespace)
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	if !n.isNS {
		return n
	}
	return NamespaceNode(n.namespace.Clone())
}

// Equal reports whether both nodes hold the same color or the same tree.
func (n Node) Equal(other Node) bool {
	if n.isNS != other.isNS {
		return false
	}
	if !n.isNS {
		return n.color == other.color
	}
	return n.namespace.Equal(other.namespace)
}

// Clone returns a deep copy of the namespace.
func (ns Namespace) Clone() Namespace {
	cloned := make(Namespace, len(ns))
	for k, v := range ns {
		cloned[k] = v.Clone()
	}
	return cloned
}

// Equal reports whether both namespaces hold equal nodes under the same keys.
func (ns Namespace) Equal(other Namespace) bool {
	if len(ns) != len(other) {
		return false
	}
	for k, v := range ns {
		o, ok := other[k]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// Keys returns the namespace keys in sorted order.
func (ns Namespace) Keys() []string {
	keys := lo.Keys(ns)
	slices.Sort(keys)
	return keys
}
