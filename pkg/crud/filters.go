package crud

import "strings"

// Predicate is a pure, synchronous record filter. Predicates run over the
// cached list state only; filtering never touches the network.
type Predicate func(Record) bool

// And matches records satisfying every predicate. With no predicates it
// matches everything, so an empty search restores the full list.
func And(preds ...Predicate) Predicate {
	return func(rec Record) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// FieldContains matches records where keyword is a substring of any of the
// given fields. An empty keyword matches every record.
func FieldContains(keyword string, fields ...string) Predicate {
	keyword = strings.TrimSpace(keyword)
	return func(rec Record) bool {
		if keyword == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(rec.Str(f), keyword) {
				return true
			}
		}
		return false
	}
}

// FieldEquals matches records whose field renders exactly as want.
func FieldEquals(field, want string) Predicate {
	return func(rec Record) bool {
		return rec.Str(field) == want
	}
}

// FieldAtLeast matches records whose numeric field is at least min. Records
// without the field never match.
func FieldAtLeast(field string, min float64) Predicate {
	return func(rec Record) bool {
		v, ok := rec.Float(field)
		return ok && v >= min
	}
}
