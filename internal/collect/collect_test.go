package collect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/values-engine/internal/document"
	"github.com/nauticalab/values-engine/internal/schema"
	"github.com/nauticalab/values-engine/internal/validate"
)

// scriptedPrompter answers prompts from pre-seeded maps and records the
// order prompts arrive in. A path with no scripted answer accepts whatever
// default is on offer.
type scriptedPrompter struct {
	inputs  map[string]string // free-text answers by path
	selects map[string]string // option label to choose by path
	order   []string          // paths in prompt order
	defs    map[string]string // last default shown per path
	err     error             // returned from every prompt when set
}

func newScriptedPrompter() *scriptedPrompter {
	return &scriptedPrompter{
		inputs:  make(map[string]string),
		selects: make(map[string]string),
		defs:    make(map[string]string),
	}
}

func (s *scriptedPrompter) Input(path, def string) (string, error) {
	s.order = append(s.order, path)
	s.defs[path] = def
	if s.err != nil {
		return "", s.err
	}
	if raw, ok := s.inputs[path]; ok {
		return raw, nil
	}
	return "", nil
}

func (s *scriptedPrompter) Select(path string, options []string, def string) (int, error) {
	s.order = append(s.order, path)
	s.defs[path] = def
	if s.err != nil {
		return 0, s.err
	}
	want, ok := s.selects[path]
	if !ok {
		want = def
	}
	for i, option := range options {
		if option == want {
			return i, nil
		}
	}
	return 0, nil
}

// scenarioSchema mirrors a minimal deployment: a replica count union and an
// image block.
func scenarioSchema() *schema.Node {
	return schema.Object(
		schema.Field{Name: "replicaCount", Node: schema.UnionRange(1, 10)},
		schema.Field{Name: "image", Node: schema.Object(
			schema.Field{Name: "repository", Node: schema.Enum("nginx", "httpd", "redis")},
			schema.Field{Name: "tag", Node: schema.String()},
			schema.Field{Name: "pullPolicy", Node: schema.Enum("Always", "IfNotPresent", "Never")},
		)},
	)
}

const scenarioDefaults = `replicaCount: 3
image:
  repository: nginx
  tag: "1.25"
  pullPolicy: IfNotPresent
`

func parseDefaults(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(scenarioDefaults))
	require.NoError(t, err)
	return doc
}

func TestRunAcceptingDefaults(t *testing.T) {
	root := scenarioSchema()
	defaults := parseDefaults(t)

	prompter := newScriptedPrompter()
	result, err := New(prompter).Run(root, defaults)
	require.NoError(t, err)

	// Accepting every default reproduces the default document exactly.
	assert.True(t, result.Equal(defaults))

	verdict := validate.Validate(result, root)
	assert.True(t, verdict.Valid(), "issues: %v", verdict.Issues)
}

func TestRunEscapeEntry(t *testing.T) {
	root := scenarioSchema()
	defaults := parseDefaults(t)

	prompter := newScriptedPrompter()
	prompter.selects["replicaCount"] = EscapeOption
	prompter.inputs["replicaCount"] = "7"

	result, err := New(prompter).Run(root, defaults)
	require.NoError(t, err)

	expected := parseDefaults(t)
	expected.Set("replicaCount", float64(7))
	assert.True(t, result.Equal(expected))

	verdict := validate.Validate(result, root)
	assert.True(t, verdict.Valid(), "issues: %v", verdict.Issues)
}

func TestRunEscapeEntryOutOfRange(t *testing.T) {
	root := scenarioSchema()
	defaults := parseDefaults(t)

	prompter := newScriptedPrompter()
	prompter.selects["replicaCount"] = EscapeOption
	prompter.inputs["replicaCount"] = "eleven"

	result, err := New(prompter).Run(root, defaults)
	require.NoError(t, err)

	// Best-effort cast kept the raw text; the validator catches it.
	v, ok := result.Lookup("replicaCount")
	require.True(t, ok)
	assert.Equal(t, "eleven", v)

	verdict := validate.Validate(result, root)
	require.False(t, verdict.Valid())
	require.Len(t, verdict.Issues, 1)
	assert.Equal(t, "replicaCount", verdict.Issues[0].Path)
	assert.Contains(t, verdict.Issues[0].Reason, "must be one of")
}

func TestRunLeafCoverage(t *testing.T) {
	root, ok := schema.Lookup("deployment")
	require.True(t, ok)

	prompter := newScriptedPrompter()
	result, err := New(prompter).Run(root, nil)
	require.NoError(t, err)

	// Exactly the schema's leaf set, prompted in schema order.
	assert.Equal(t, root.LeafPaths(), document.Flatten(result).Paths())
	assert.Equal(t, root.LeafPaths(), prompter.order)
}

func TestRunSelectedOptionIsTyped(t *testing.T) {
	root := schema.Object(
		schema.Field{Name: "count", Node: schema.UnionRange(1, 5)},
		schema.Field{Name: "policy", Node: schema.Enum("Always", "Never")},
	)

	prompter := newScriptedPrompter()
	prompter.selects["count"] = "4"
	prompter.selects["policy"] = "Never"

	result, err := New(prompter).Run(root, nil)
	require.NoError(t, err)

	v, _ := result.Lookup("count")
	assert.Equal(t, float64(4), v)
	v, _ = result.Lookup("policy")
	assert.Equal(t, "Never", v)
}

func TestRunShapeMismatch(t *testing.T) {
	root := schema.Object(
		schema.Field{Name: "image", Node: schema.Object(
			schema.Field{Name: "tag", Node: schema.String()},
		)},
		schema.Field{Name: "name", Node: schema.String()},
	)

	// image is a scalar where a mapping is expected, and name is a mapping
	// where a scalar is expected. Both degrade to "ask with no default".
	defaults, err := document.Parse([]byte("image: nginx\nname:\n  nested: oops\n"))
	require.NoError(t, err)

	prompter := newScriptedPrompter()
	prompter.inputs["image.tag"] = "latest"
	prompter.inputs["name"] = "api"

	result, runErr := New(prompter).Run(root, defaults)
	require.NoError(t, runErr)

	assert.Equal(t, "", prompter.defs["image.tag"], "mismatched default must not pre-fill")
	assert.Equal(t, "", prompter.defs["name"], "mismatched default must not pre-fill")

	v, _ := result.Lookup("image.tag")
	assert.Equal(t, "latest", v)
	v, _ = result.Lookup("name")
	assert.Equal(t, "api", v)
}

func TestRunEmptyAnswerWithoutDefault(t *testing.T) {
	root := schema.Object(
		schema.Field{Name: "note", Node: schema.String()},
		schema.Field{Name: "flag", Node: schema.Bool()},
	)

	result, err := New(newScriptedPrompter()).Run(root, nil)
	require.NoError(t, err)

	v, _ := result.Lookup("note")
	assert.Equal(t, "", v)
	v, _ = result.Lookup("flag")
	assert.Equal(t, false, v)
}

func TestRunErrors(t *testing.T) {
	t.Run("enumerated leaf without options is fatal", func(t *testing.T) {
		root := schema.Object(
			schema.Field{Name: "color", Node: schema.Enum()},
		)

		_, err := New(newScriptedPrompter()).Run(root, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declares no options")
	})

	t.Run("prompter failure aborts the walk", func(t *testing.T) {
		root := scenarioSchema()
		prompter := newScriptedPrompter()
		prompter.err = errors.New("terminal gone")

		result, err := New(prompter).Run(root, parseDefaults(t))
		require.Error(t, err)
		assert.ErrorContains(t, err, "terminal gone")
		assert.Nil(t, result)
		// The walk stopped at the first leaf.
		assert.Equal(t, []string{"replicaCount"}, prompter.order)
	})

	t.Run("non-object root is rejected", func(t *testing.T) {
		_, err := New(newScriptedPrompter()).Run(schema.String(), nil)
		require.Error(t, err)

		_, err = New(newScriptedPrompter()).Run(nil, nil)
		require.Error(t, err)
	})
}
