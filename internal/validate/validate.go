// Package validate re-checks an assembled values document against its
// schema before anything is persisted. It is the single authority on
// correctness: collection casts values permissively and relies on this pass
// to catch what slipped through.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nauticalab/values-engine/internal/document"
	"github.com/nauticalab/values-engine/internal/schema"
)

// formats checks named string formats (hostname_rfc1123 and friends) on
// string leaves that declare one.
var formats = validator.New(validator.WithRequiredStructEnabled())

// Issue describes one rejected path.
type Issue struct {
	// Path is the dot-joined location of the offending field.
	Path string
	// Reason is a human-readable description of the failure.
	Reason string
}

// Result contains every issue found in one validation pass.
type Result struct {
	Issues []Issue
}

// Valid reports whether the document passed.
func (r *Result) Valid() bool {
	return len(r.Issues) == 0
}

// Error renders the result as a single error, or nil when valid.
func (r *Result) Error() error {
	if r.Valid() {
		return nil
	}
	lines := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		lines[i] = fmt.Sprintf("%s: %s", issue.Path, issue.Reason)
	}
	return fmt.Errorf("values validation failed:\n  - %s", strings.Join(lines, "\n  - "))
}

func (r *Result) add(path, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Path: path, Reason: fmt.Sprintf(format, args...)})
}

// Validate checks doc against the schema rooted at root. It is pure: the
// same inputs always produce the same verdict and the same issue order
// (schema order first, then unexpected keys in document order). Every
// offending path is reported, not just the first.
func Validate(doc *document.Document, root *schema.Node) *Result {
	result := &Result{}
	if root == nil || root.Kind != schema.KindObject {
		result.add("", "schema root must be an object")
		return result
	}
	if doc == nil {
		result.add("", "document is empty")
		return result
	}
	checkObject(doc, root, "", result)
	return result
}

func checkObject(doc *document.Document, node *schema.Node, prefix string, result *Result) {
	for _, f := range node.Fields {
		path := joinPath(prefix, f.Name)
		v, ok := doc.Get(f.Name)
		if !ok {
			result.add(path, "missing value")
			continue
		}

		if f.Node.Kind == schema.KindObject {
			sub, ok := v.(*document.Document)
			if !ok {
				result.add(path, "expected a mapping, got %v", v)
				continue
			}
			checkObject(sub, f.Node, path, result)
			continue
		}

		if _, isDoc := v.(*document.Document); isDoc {
			result.add(path, "expected a scalar, got a mapping")
			continue
		}
		checkLeaf(v, f.Node, path, result)
	}

	for _, key := range doc.Keys() {
		if node.Child(key) == nil {
			result.add(joinPath(prefix, key), "unexpected field")
		}
	}
}

func checkLeaf(v any, leaf *schema.Node, path string, result *Result) {
	switch leaf.Kind {
	case schema.KindEnum:
		s, ok := v.(string)
		if !ok || !containsString(leaf.Options, s) {
			result.add(path, "must be one of [%s], got %v",
				strings.Join(leaf.Options, ", "), v)
		}

	case schema.KindLiteralUnion:
		for _, l := range leaf.Literals {
			if document.ScalarEqual(l, v) {
				return
			}
		}
		result.add(path, "must be one of [%s], got %v",
			strings.Join(literalStrings(leaf.Literals), ", "), v)

	case schema.KindNumber:
		f, ok := asNumber(v)
		if !ok {
			result.add(path, "must be a number, got %v", v)
			return
		}
		if leaf.Min != nil && f < *leaf.Min {
			result.add(path, "must be >= %s, got %v", document.FormatScalar(*leaf.Min), v)
		}
		if leaf.Max != nil && f > *leaf.Max {
			result.add(path, "must be <= %s, got %v", document.FormatScalar(*leaf.Max), v)
		}

	case schema.KindBool:
		if _, ok := v.(bool); !ok {
			result.add(path, "must be true or false, got %v", v)
		}

	case schema.KindString:
		s, ok := v.(string)
		if !ok {
			result.add(path, "must be a string, got %v", v)
			return
		}
		if leaf.Pattern != "" {
			re, err := regexp.Compile(leaf.Pattern)
			if err != nil {
				result.add(path, "schema pattern %q is invalid: %v", leaf.Pattern, err)
			} else if !re.MatchString(s) {
				result.add(path, "must match %s, got %q", leaf.Pattern, s)
			}
		}
		if leaf.Format != "" {
			if err := formats.Var(s, leaf.Format); err != nil {
				result.add(path, "must be a valid %s, got %q", leaf.Format, s)
			}
		}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func containsString(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

func literalStrings(literals []any) []string {
	out := make([]string, len(literals))
	for i, l := range literals {
		out[i] = document.FormatScalar(l)
	}
	return out
}

func asNumber(v any) (float64, bool) {
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
