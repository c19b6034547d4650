package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nauticalab/values-engine/internal/schema"
)

func TestCast(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		leaf *schema.Node
		want any
	}{
		{"number parses", "42", schema.Number(), float64(42)},
		{"fractional number", "2.5", schema.Number(), 2.5},
		{"padded number parses", " 7 ", schema.Number(), float64(7)},
		{"unparseable number keeps raw text", "eleven", schema.Number(), "eleven"},
		{"union numeric entry", "7", schema.UnionRange(1, 10), float64(7)},
		{"union non-numeric entry keeps raw text", "eleven", schema.UnionRange(1, 10), "eleven"},
		{"bool true", "true", schema.Bool(), true},
		{"bool mixed case", "True", schema.Bool(), true},
		{"bool one is false", "1", schema.Bool(), false},
		{"bool yes is false", "yes", schema.Bool(), false},
		{"bool empty is false", "", schema.Bool(), false},
		{"string verbatim", "  spaced  ", schema.String(), "  spaced  "},
		{"enum verbatim", "nginx", schema.Enum("nginx", "httpd"), "nginx"},
		{"string that looks numeric stays string", "1.25", schema.String(), "1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cast(tt.raw, tt.leaf))
		})
	}
}

// Casting the string form of an already-typed value must yield that value
// back: stringify-then-cast is a fixed point.
func TestCastIdempotence(t *testing.T) {
	tests := []struct {
		name string
		text string
		leaf *schema.Node
		want any
	}{
		{"number", "42", schema.Number(), float64(42)},
		{"bool", "true", schema.Bool(), true},
		{"string", "nginx", schema.String(), "nginx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Cast(tt.text, tt.leaf)
			assert.Equal(t, tt.want, first)
		})
	}
}
