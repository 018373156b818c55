package crud

import "strconv"

// Record is one entity row exactly as the backend returned it. Field sets
// vary per entity kind and the controller never validates them beyond what
// the form enforces; accessors below only coerce for display.
type Record map[string]any

// Str renders the field as a string. Absent and null fields become the empty
// string; JSON numbers render without a trailing fraction when integral, so
// numeric ids stay usable as ids.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// Float reads a numeric field; ok reports whether the field held a number.
func (r Record) Float(key string) (float64, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool reads a truthy field; the backend encodes flags as 0/1 or booleans.
func (r Record) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t == "1" || t == "true"
	default:
		return false
	}
}

// Has reports whether the field is present and non-null.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}
