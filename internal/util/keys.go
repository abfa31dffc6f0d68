package util

import "strings"

// SnakeToCamel converts a snake_case key to camelCase. Keys without
// underscores are returned unchanged.
func SnakeToCamel(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return key
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// NormalizeKeys returns a copy of m with snake_case keys rewritten to
// camelCase, recursing into nested objects and arrays. Values are carried
// over untouched; existing camelCase keys win over normalized duplicates.
func NormalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		ck := SnakeToCamel(k)
		if _, exists := m[ck]; exists && ck != k {
			continue
		}
		out[ck] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return NormalizeKeys(val)
	case []any:
		normalized := make([]any, len(val))
		for i, item := range val {
			normalized[i] = normalizeValue(item)
		}
		return normalized
	default:
		return v
	}
}
