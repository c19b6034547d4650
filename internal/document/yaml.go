package document

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML values file. The error wraps os.ErrNotExist
// when the file is missing so callers can fall back to empty defaults.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes YAML into a document, preserving mapping key order. The top
// level must be a mapping (or empty, which yields an empty document).
// Sequences are rejected anywhere: arrays are outside the data model.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return New(), nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top-level YAML must be a mapping, got %s", nodeKind(top))
	}
	return fromMapping(top)
}

// Marshal encodes a document back to YAML in key order. Whole-number floats
// are emitted as integers so a round-tripped file reads naturally.
func Marshal(doc *Document) ([]byte, error) {
	node, err := toMapping(doc)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func fromMapping(n *yaml.Node) (*Document, error) {
	doc := New()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		valueNode := n.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("mapping key at line %d: %w", keyNode.Line, err)
		}

		if valueNode.Kind == yaml.AliasNode {
			valueNode = valueNode.Alias
		}

		switch valueNode.Kind {
		case yaml.MappingNode:
			sub, err := fromMapping(valueNode)
			if err != nil {
				return nil, err
			}
			doc.Set(key, sub)
		case yaml.SequenceNode:
			return nil, fmt.Errorf("field %q is an array; arrays are not supported in values documents", key)
		default:
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return nil, fmt.Errorf("value for %q at line %d: %w", key, valueNode.Line, err)
			}
			doc.Set(key, normalizeScalar(value))
		}
	}
	return doc, nil
}

func toMapping(doc *Document) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range doc.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", key, err)
		}

		var valueNode *yaml.Node
		switch v := doc.values[key].(type) {
		case *Document:
			sub, err := toMapping(v)
			if err != nil {
				return nil, err
			}
			valueNode = sub
		default:
			valueNode = &yaml.Node{}
			if err := valueNode.Encode(emitScalar(v)); err != nil {
				return nil, fmt.Errorf("encode value for %q: %w", key, err)
			}
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// normalizeScalar folds every numeric YAML type into float64.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return v
	}
}

func emitScalar(v any) any {
	if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return int64(f)
	}
	return v
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown"
	}
}
