package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// CoerceID converts a scalar id argument to an int64. Strings must be
// base-10 integers after trimming surrounding whitespace; JSON numbers
// arrive as float64 and must be integral.
func CoerceID(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
			return 0, fmt.Errorf("not an integer: %v", t)
		}
		return int64(t), nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", t)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}

// NormalizeIDs turns the accepted shapes of a bulk-id argument into a
// canonical id list: a delimited string is split on commas and
// whitespace with empty tokens discarded, a sequence is used as-is, and
// a single scalar is wrapped into a one-element list. Tokens that do
// not coerce to an integer come back in invalid, verbatim.
func NormalizeIDs(v any) (ids []int64, invalid []string) {
	var raw []any
	switch t := v.(type) {
	case string:
		for _, tok := range splitIDList(t) {
			raw = append(raw, tok)
		}
	case []any:
		raw = t
	default:
		raw = []any{v}
	}

	for _, item := range raw {
		id, err := CoerceID(item)
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("%v", item))
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid
}

func splitIDList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
