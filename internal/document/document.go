// Package document models the nested values documents the engine collects,
// validates and persists. A document is an ordered mapping from field name
// to either a scalar or a nested document; arrays are deliberately outside
// the data model.
//
// Scalars loaded from YAML are normalized so numbers are always float64,
// which keeps equality and membership checks to a single representation.
package document

import "strconv"

// Document is an ordered mapping from field name to value. A value is
// either a scalar (string, float64, bool or nil) or a nested *Document.
// Key order is insertion order and is preserved by every operation.
type Document struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores value under key. Setting an existing key replaces its value in
// place without changing its position.
func (d *Document) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the document's keys in insertion order. The slice is a copy.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of top-level entries.
func (d *Document) Len() int {
	return len(d.keys)
}

// Lookup resolves a dot-joined path to the value it addresses.
func (d *Document) Lookup(path string) (any, bool) {
	current := d
	rest := path
	for {
		head, tail, nested := cutPath(rest)
		v, ok := current.values[head]
		if !ok {
			return nil, false
		}
		if !nested {
			return v, true
		}
		sub, ok := v.(*Document)
		if !ok {
			return nil, false
		}
		current = sub
		rest = tail
	}
}

// Equal reports whether two documents hold the same keys in the same order
// with equal values. Numeric scalars compare by value regardless of Go type.
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.keys) != len(other.keys) {
		return false
	}
	for i, key := range d.keys {
		if other.keys[i] != key {
			return false
		}
		a := d.values[key]
		b := other.values[key]
		subA, aDoc := a.(*Document)
		subB, bDoc := b.(*Document)
		if aDoc != bDoc {
			return false
		}
		if aDoc {
			if !subA.Equal(subB) {
				return false
			}
			continue
		}
		if !ScalarEqual(a, b) {
			return false
		}
	}
	return true
}

// ScalarEqual compares two scalar values, treating all numeric types as the
// same domain so a YAML integer equals the float it normalizes to.
func ScalarEqual(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa == fb
	}
	return a == b
}

// FormatScalar renders a scalar for display: the text a prompt pre-fills or
// an option list shows. Whole floats render without a decimal point.
func FormatScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// cutPath splits a dot-joined path into its first segment and the rest.
func cutPath(path string) (head, tail string, nested bool) {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i], path[i+1:], true
		}
	}
	return path, "", false
}
