// Package schema defines the typed descriptor tree that drives interactive
// value collection. A schema is a read-only structure built once at startup;
// the collector walks it to decide what to ask for, and the validator walks
// it again to judge the assembled document.
package schema

import "fmt"

// Kind identifies the variant of a schema node. Every leaf kind is terminal;
// only KindObject nodes have children.
type Kind int

const (
	// KindObject is an internal node with named, ordered children.
	KindObject Kind = iota
	// KindEnum is a leaf restricted to a fixed set of string options.
	KindEnum
	// KindLiteralUnion is a leaf restricted to a fixed set of scalar
	// constants, which may be numbers or strings.
	KindLiteralUnion
	// KindNumber is a numeric leaf with an optional range constraint.
	KindNumber
	// KindBool is a boolean leaf.
	KindBool
	// KindString is a free-text leaf with optional format constraints.
	KindString
)

// Field pairs a name with its child node. The order of fields within an
// Object node is the order they were declared and drives prompt order.
type Field struct {
	Name string
	Node *Node
}

// Node describes one field or subtree of a values document.
//
// Min, Max, Pattern and Format are constraints consumed only by the
// validator; collection never enforces them.
type Node struct {
	Kind Kind

	// Fields holds the ordered children of a KindObject node.
	Fields []Field

	// Options holds the allowed values of a KindEnum leaf.
	Options []string

	// Literals holds the allowed constants of a KindLiteralUnion leaf.
	// Entries are string or float64.
	Literals []any

	// Min and Max bound a KindNumber leaf (inclusive) when non-nil.
	Min *float64
	Max *float64

	// Pattern constrains a KindString leaf to a regular expression when
	// non-empty.
	Pattern string

	// Format names a go-playground/validator tag (e.g. "hostname_rfc1123")
	// applied to a KindString leaf.
	Format string
}

// Object builds an internal node from ordered fields. Field names must be
// unique within the node; a duplicate is a programming error and panics.
func Object(fields ...Field) *Node {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			panic(fmt.Sprintf("schema: duplicate field name %q", f.Name))
		}
		seen[f.Name] = true
	}
	return &Node{Kind: KindObject, Fields: fields}
}

// Enum builds a leaf restricted to the given string options.
func Enum(options ...string) *Node {
	return &Node{Kind: KindEnum, Options: options}
}

// Union builds a leaf restricted to the given scalar constants. Integer
// literals are normalized to float64 so membership checks compare a single
// numeric representation.
func Union(literals ...any) *Node {
	normalized := make([]any, len(literals))
	for i, l := range literals {
		switch v := l.(type) {
		case int:
			normalized[i] = float64(v)
		case int64:
			normalized[i] = float64(v)
		case float64, string:
			normalized[i] = v
		default:
			panic(fmt.Sprintf("schema: union literal must be a number or string, got %T", l))
		}
	}
	return &Node{Kind: KindLiteralUnion, Literals: normalized}
}

// UnionRange builds a literal union of the integers lo..hi inclusive.
// Useful for small fixed ranges such as a replica count.
func UnionRange(lo, hi int) *Node {
	if hi < lo {
		panic(fmt.Sprintf("schema: invalid union range %d..%d", lo, hi))
	}
	literals := make([]any, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		literals = append(literals, float64(i))
	}
	return &Node{Kind: KindLiteralUnion, Literals: literals}
}

// Number builds a free numeric leaf.
func Number() *Node {
	return &Node{Kind: KindNumber}
}

// Bool builds a boolean leaf.
func Bool() *Node {
	return &Node{Kind: KindBool}
}

// String builds a free-text leaf.
func String() *Node {
	return &Node{Kind: KindString}
}

// InRange attaches an inclusive numeric range constraint and returns the
// node for chaining during schema construction.
func (n *Node) InRange(min, max float64) *Node {
	n.Min = &min
	n.Max = &max
	return n
}

// WithPattern attaches a regular expression constraint to a string leaf.
func (n *Node) WithPattern(pattern string) *Node {
	n.Pattern = pattern
	return n
}

// WithFormat attaches a named format constraint to a string leaf.
func (n *Node) WithFormat(format string) *Node {
	n.Format = format
	return n
}

// IsLeaf reports whether the node is terminal.
func (n *Node) IsLeaf() bool {
	return n.Kind != KindObject
}

// HasOptions reports whether the leaf enumerates its allowed values.
func (n *Node) HasOptions() bool {
	return n.Kind == KindEnum || n.Kind == KindLiteralUnion
}

// Child returns the named child of an Object node, or nil if absent.
func (n *Node) Child(name string) *Node {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Node
		}
	}
	return nil
}

// LeafPaths returns the dot-joined path of every leaf reachable from n, in
// schema-declared depth-first order. For a leaf node it returns one empty
// path.
func (n *Node) LeafPaths() []string {
	var paths []string
	var walk func(node *Node, prefix string)
	walk = func(node *Node, prefix string) {
		if node.IsLeaf() {
			paths = append(paths, prefix)
			return
		}
		for _, f := range node.Fields {
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			walk(f.Node, path)
		}
	}
	walk(n, "")
	return paths
}
