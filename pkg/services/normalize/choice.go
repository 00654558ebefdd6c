package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// choiceKeys is the ordered candidate list probed when a choice field arrives
// as a nested object. The first non-null-like hit wins.
var choiceKeys = []string{"Value", "value", "Title", "Name", "DisplayName", "label", "Label"}

// ExtractChoiceValue flattens a raw choice field into a display string.
// Nested objects are resolved by probing choiceKeys recursively; lists are
// resolved element-wise and joined with ", "; plain strings are trimmed.
// An empty string means the value is absent.
func ExtractChoiceValue(v any) string {
	if IsNullLike(v) {
		return ""
	}

	switch t := v.(type) {
	case map[string]any:
		for _, key := range choiceKeys {
			if inner, ok := t[key]; ok && !IsNullLike(inner) {
				return ExtractChoiceValue(inner)
			}
		}
		// No candidate key matched: fall back to a deterministic
		// serialization (encoding/json sorts map keys).
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	case []any:
		if len(t) == 0 {
			return ""
		}
		var parts []string
		for _, item := range t {
			if cleaned := ExtractChoiceValue(item); !IsNullLike(cleaned) {
				parts = append(parts, cleaned)
			}
		}
		return strings.Join(parts, ", ")
	case string:
		return strings.TrimSpace(t)
	case float64:
		return trimFloat(t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// trimFloat renders JSON numbers without a trailing ".000000" so that
// integer-valued choice fields round-trip as "42", not "42.000000".
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
