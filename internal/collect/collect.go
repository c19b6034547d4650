// Package collect implements the schema-driven interactive collector: it
// walks a schema depth-first, asks its prompter for a value at every leaf,
// and assembles the answers into a nested values document.
//
// Collection is single-threaded and suspends at each leaf: exactly one
// prompt is outstanding at any time, and prompts are issued in
// schema-declared order. An error from the prompter (including an
// interrupt) aborts the whole walk; no partial document escapes.
package collect

import (
	"fmt"

	"github.com/nauticalab/values-engine/internal/document"
	"github.com/nauticalab/values-engine/internal/schema"
)

// EscapeOption is the synthetic trailing choice shown on enumerated leaves.
// Selecting it switches the leaf to free-text entry.
const EscapeOption = "Other (enter manually)"

// Prompter supplies the two interactive primitives the collector needs.
// Implementations block until input arrives.
type Prompter interface {
	// Input asks for free text for the leaf at path. def pre-fills the
	// answer so an empty response means "accept the default".
	Input(path, def string) (string, error)

	// Select asks the user to pick one of options for the leaf at path
	// and returns its index. def is the display form of the current
	// default and may be used to position the initial cursor; it need not
	// match any option.
	Select(path string, options []string, def string) (int, error)
}

// Collector produces values documents by walking a schema.
type Collector struct {
	prompter Prompter
}

// New returns a collector that asks p for every leaf value.
func New(p Prompter) *Collector {
	return &Collector{prompter: p}
}

// Run walks the schema and returns the assembled document. defaults may be
// nil or partially populated; wherever its shape disagrees with the schema
// the collector degrades to prompting with no pre-filled value. The result
// has exactly the leaf set the schema implies.
func (c *Collector) Run(root *schema.Node, defaults *document.Document) (*document.Document, error) {
	if root == nil || root.Kind != schema.KindObject {
		return nil, fmt.Errorf("schema root must be an object")
	}
	return c.walkObject(root, defaults, "")
}

func (c *Collector) walkObject(node *schema.Node, defaults *document.Document, prefix string) (*document.Document, error) {
	result := document.New()
	for _, f := range node.Fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		if f.Node.Kind == schema.KindObject {
			sub, err := c.walkObject(f.Node, childDefaults(defaults, f.Name), path)
			if err != nil {
				return nil, err
			}
			result.Set(f.Name, sub)
			continue
		}

		def, hasDef := leafDefault(defaults, f.Name)
		value, err := c.collectLeaf(f.Node, path, def, hasDef)
		if err != nil {
			return nil, err
		}
		result.Set(f.Name, value)
	}
	return result, nil
}

func (c *Collector) collectLeaf(leaf *schema.Node, path string, def any, hasDef bool) (any, error) {
	defText := ""
	if hasDef {
		defText = document.FormatScalar(def)
	}

	if leaf.HasOptions() {
		labels := optionLabels(leaf)
		if len(labels) == 0 {
			return nil, fmt.Errorf("enumerated leaf %s declares no options", path)
		}

		choice, err := c.prompter.Select(path, append(labels, EscapeOption), defText)
		if err != nil {
			return nil, fmt.Errorf("prompt for %s: %w", path, err)
		}
		if choice < 0 || choice > len(labels) {
			return nil, fmt.Errorf("choice %d for %s is out of range", choice, path)
		}
		if choice < len(labels) {
			// A listed option is already correctly typed.
			return optionValue(leaf, choice), nil
		}
		// Escape choice: fall through to free-text entry.
	}

	raw, err := c.prompter.Input(path, defText)
	if err != nil {
		return nil, fmt.Errorf("prompt for %s: %w", path, err)
	}
	if raw == "" && hasDef {
		return def, nil
	}
	return Cast(raw, leaf), nil
}

// childDefaults returns the nested defaults for an object field. A scalar
// where a mapping is expected is a shape mismatch and degrades to nil.
func childDefaults(defaults *document.Document, name string) *document.Document {
	if defaults == nil {
		return nil
	}
	v, ok := defaults.Get(name)
	if !ok {
		return nil
	}
	sub, ok := v.(*document.Document)
	if !ok {
		return nil
	}
	return sub
}

// leafDefault returns the default for a leaf field. A mapping where a scalar
// is expected is a shape mismatch and degrades to no default.
func leafDefault(defaults *document.Document, name string) (any, bool) {
	if defaults == nil {
		return nil, false
	}
	v, ok := defaults.Get(name)
	if !ok {
		return nil, false
	}
	if _, isDoc := v.(*document.Document); isDoc {
		return nil, false
	}
	return v, true
}

// optionLabels renders the enumerated options of a leaf for display.
func optionLabels(leaf *schema.Node) []string {
	if leaf.Kind == schema.KindEnum {
		return append([]string(nil), leaf.Options...)
	}
	labels := make([]string, len(leaf.Literals))
	for i, l := range leaf.Literals {
		labels[i] = document.FormatScalar(l)
	}
	return labels
}

// optionValue returns the typed value behind option index i.
func optionValue(leaf *schema.Node, i int) any {
	if leaf.Kind == schema.KindEnum {
		return leaf.Options[i]
	}
	return leaf.Literals[i]
}
