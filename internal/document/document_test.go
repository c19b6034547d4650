package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSetGet(t *testing.T) {
	t.Run("keys keep insertion order", func(t *testing.T) {
		doc := New()
		doc.Set("zebra", 1.0)
		doc.Set("apple", 2.0)
		doc.Set("mango", 3.0)

		assert.Equal(t, []string{"zebra", "apple", "mango"}, doc.Keys())
		assert.Equal(t, 3, doc.Len())
	})

	t.Run("overwriting keeps position", func(t *testing.T) {
		doc := New()
		doc.Set("first", "a")
		doc.Set("second", "b")
		doc.Set("first", "updated")

		assert.Equal(t, []string{"first", "second"}, doc.Keys())
		v, ok := doc.Get("first")
		require.True(t, ok)
		assert.Equal(t, "updated", v)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := New().Get("absent")
		assert.False(t, ok)
	})
}

func TestLookup(t *testing.T) {
	inner := New()
	inner.Set("port", float64(8080))

	doc := New()
	doc.Set("name", "api")
	doc.Set("service", inner)

	v, ok := doc.Lookup("service.port")
	require.True(t, ok)
	assert.Equal(t, float64(8080), v)

	v, ok = doc.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "api", v)

	_, ok = doc.Lookup("service.host")
	assert.False(t, ok)

	// Path descends through a scalar
	_, ok = doc.Lookup("name.inner")
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	build := func() *Document {
		sub := New()
		sub.Set("tag", "1.25")
		doc := New()
		doc.Set("replicas", float64(3))
		doc.Set("image", sub)
		return doc
	}

	t.Run("identical documents", func(t *testing.T) {
		assert.True(t, build().Equal(build()))
	})

	t.Run("numeric values compare across Go types", func(t *testing.T) {
		a := New()
		a.Set("count", 3)
		b := New()
		b.Set("count", float64(3))
		assert.True(t, a.Equal(b))
	})

	t.Run("different key order is not equal", func(t *testing.T) {
		a := New()
		a.Set("x", "1")
		a.Set("y", "2")
		b := New()
		b.Set("y", "2")
		b.Set("x", "1")
		assert.False(t, a.Equal(b))
	})

	t.Run("scalar vs mapping is not equal", func(t *testing.T) {
		a := build()
		b := build()
		b.Set("image", "nginx")
		assert.False(t, a.Equal(b))
	})

	t.Run("nil other", func(t *testing.T) {
		assert.False(t, build().Equal(nil))
	})
}

func TestScalarEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"int and float", 3, float64(3), true},
		{"int64 and float", int64(7), float64(7), true},
		{"different numbers", float64(3), float64(4), false},
		{"equal strings", "nginx", "nginx", true},
		{"string and number", "3", float64(3), false},
		{"bools", true, true, true},
		{"nil and nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScalarEqual(tt.a, tt.b))
		})
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"whole float", float64(3), "3"},
		{"fractional float", 2.5, "2.5"},
		{"string", "nginx", "nginx"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScalar(tt.in))
		})
	}
}
