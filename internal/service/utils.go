package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// sanitizeUTF8 drops invalid UTF-8 bytes. Postgres rejects them in jsonb and
// encoding/json would silently turn them into U+FFFD.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// plainValue converts v into a generic JSON tree (map[string]any, []any,
// string, float64, bool, nil) with every string sanitized. Typed values are
// round-tripped through encoding/json.
func plainValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, float64:
		return t, nil
	case string:
		return sanitizeUTF8(t), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			pv, err := plainValue(child)
			if err != nil {
				return nil, err
			}
			out[sanitizeUTF8(k)] = pv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			pv, err := plainValue(child)
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("value is not JSON encodable: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return plainValue(generic)
}
