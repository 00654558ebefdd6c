package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// nullLexicon is the single source of truth for "absent" across all
// normalizers: raw values whose trimmed, lowercased form appears here are
// treated as logically missing.
var nullLexicon = map[string]struct{}{
	"nan":       {},
	"none":      {},
	"null":      {},
	"n/a":       {},
	"na":        {},
	"#n/a":      {},
	"":          {},
	"-":         {},
	"--":        {},
	"undefined": {},
}

// IsNullLike reports whether v should be treated as logically absent. Nil,
// NaN floats, and strings matching the null lexicon after trimming all
// qualify. Zero and false do not.
func IsNullLike(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(t)
	case float32:
		return math.IsNaN(float64(t))
	case string:
		_, ok := nullLexicon[strings.ToLower(strings.TrimSpace(t))]
		return ok
	default:
		return false
	}
}

// ParseNumber coerces v into a float64, resolving locale-ambiguous decimal
// and thousands separators. Null-like input, unparsable input and degenerate
// results all yield def. When both '.' and ',' occur, the separator appearing
// later in the string is the decimal point; a lone ',' is a decimal point.
func ParseNumber(v any, def float64) float64 {
	if IsNullLike(v) {
		return def
	}

	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case bool:
		return def
	}

	s, ok := v.(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	for _, sym := range []string{"R$", "€", "$"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	s = stripNonNumeric(s)
	switch s {
	case "", "-", ".", "-.":
		return def
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDate coerces v into a timestamp using a tolerant, day-first-preferring
// parse. Null-like or unparsable input yields nil. No time-zone
// normalization is performed.
func ParseDate(v any) *time.Time {
	if IsNullLike(v) {
		return nil
	}

	switch t := v.(type) {
	case time.Time:
		return &t
	case *time.Time:
		return t
	}

	s, ok := v.(string)
	if !ok {
		return nil
	}

	parsed, err := dateparse.ParseAny(strings.TrimSpace(s), dateparse.PreferMonthFirst(false))
	if err != nil {
		return nil
	}
	return &parsed
}
