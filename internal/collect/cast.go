package collect

import (
	"strconv"
	"strings"

	"github.com/nauticalab/values-engine/internal/schema"
)

// Cast converts raw prompt text into a value suited to the leaf kind.
//
// Casting is deliberately best effort: a numeric leaf whose text does not
// parse keeps the raw text, and the validator rejects it later with a proper
// reason. Tightening this into strict parsing would duplicate constraint
// logic at every call site, so correctness is enforced once, centrally.
func Cast(raw string, leaf *schema.Node) any {
	switch leaf.Kind {
	case schema.KindNumber, schema.KindLiteralUnion:
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return f
		}
		return raw
	case schema.KindBool:
		// Only the literal "true" (case-insensitive) is true; "1" and
		// "yes" are not.
		return strings.ToLower(raw) == "true"
	default:
		return raw
	}
}
