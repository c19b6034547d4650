package document

// FlatMap is a flat view of a document: one entry per leaf, keyed by the
// dot-joined path from the root. Path order is first-encountered depth-first
// traversal order, so iterating a flattened document visits leaves in the
// same order the document declares them.
type FlatMap struct {
	paths  []string
	values map[string]any
}

// NewFlatMap returns an empty flat map.
func NewFlatMap() *FlatMap {
	return &FlatMap{values: make(map[string]any)}
}

// Set stores value under path, appending the path on first sight.
func (f *FlatMap) Set(path string, value any) {
	if _, ok := f.values[path]; !ok {
		f.paths = append(f.paths, path)
	}
	f.values[path] = value
}

// Get returns the value stored under path.
func (f *FlatMap) Get(path string) (any, bool) {
	v, ok := f.values[path]
	return v, ok
}

// Paths returns all paths in traversal order. The slice is a copy.
func (f *FlatMap) Paths() []string {
	return append([]string(nil), f.paths...)
}

// Len returns the number of entries.
func (f *FlatMap) Len() int {
	return len(f.paths)
}

// Flatten converts a nested document into its flat path-keyed form. It is a
// pure transformation; for any document without arrays it is the inverse of
// Unflatten.
func Flatten(doc *Document) *FlatMap {
	flat := NewFlatMap()
	flattenInto(doc, "", flat)
	return flat
}

func flattenInto(doc *Document, prefix string, flat *FlatMap) {
	for _, key := range doc.keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if sub, ok := doc.values[key].(*Document); ok {
			flattenInto(sub, path, flat)
			continue
		}
		flat.Set(path, doc.values[key])
	}
}

// Unflatten rebuilds a nested document from its flat form. If one path
// requires a mapping where another already wrote a scalar (both "a" and
// "a.b" present), the mapping silently replaces the scalar; that ambiguity
// is inherent to the flat representation and is not an error.
func Unflatten(flat *FlatMap) *Document {
	doc := New()
	for _, path := range flat.paths {
		current := doc
		rest := path
		for {
			head, tail, nested := cutPath(rest)
			if !nested {
				current.Set(head, flat.values[path])
				break
			}
			sub, ok := current.values[head].(*Document)
			if !ok {
				sub = New()
				current.Set(head, sub)
			}
			current = sub
			rest = tail
		}
	}
	return doc
}
