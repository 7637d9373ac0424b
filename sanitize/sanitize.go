// Package sanitize strips unsafe content from user-supplied strings before
// they are persisted or rendered into documents. It is a best-effort denylist,
// not a parser.
package sanitize

import (
	"regexp"
	"strings"
)

const (
	// MaxValueLen bounds sanitized values, MaxKeyLen bounds object keys.
	MaxValueLen = 2000
	MaxKeyLen   = 100
)

var (
	reTag       = regexp.MustCompile(`<[^>]*>`)
	reJsURI     = regexp.MustCompile(`(?i)javascript:`)
	reEventAttr = regexp.MustCompile(`(?i)on\w+\s*=`)
	reSQLWord   = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|UNION|ALTER|CREATE|EXEC|EXECUTE)\b`)
	reSQLToken  = regexp.MustCompile(`(--)|(/\*)|(\*/)`)
	reTautology = regexp.MustCompile(`(?i)['"]?\s*(OR|AND)\s*['"]?\s*\d+\s*=\s*\d+`)
)

var patterns = []*regexp.Regexp{reTag, reJsURI, reEventAttr, reSQLWord, reSQLToken, reTautology}

// String removes HTML tags, script triggers and SQL-injection token patterns,
// strips null bytes, trims whitespace and truncates to maxLen runes.
// Stripping repeats until the output is stable, so a removal cannot re-form a
// banned token ("DR--OP" -> "DROP") and the result is idempotent.
func String(s string, maxLen int) string {
	for {
		clean := s
		for _, re := range patterns {
			clean = re.ReplaceAllString(clean, "")
		}
		if clean == s {
			break
		}
		s = clean
	}
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}

// Deep sanitizes a decoded JSON value recursively: strings are sanitized,
// arrays element-wise, object keys and values both. Other types pass through.
func Deep(v any) any {
	switch t := v.(type) {
	case string:
		return String(t, MaxValueLen)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = Deep(el)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[String(k, MaxKeyLen)] = Deep(val)
		}
		return out
	default:
		return v
	}
}

// DeepMap is Deep for the common bucket shape; a nil map becomes an empty one.
func DeepMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Deep(m).(map[string]any)
}
