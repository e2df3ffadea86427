package query

import (
	"strings"
	"time"
)

// Predicate reports whether a record is kept. A nil Predicate places no
// constraint, which is how absent filter values are expressed.
type Predicate[T any] func(T) bool

// Filter keeps the records satisfying every non-nil predicate. It returns
// a new slice in the original order and never modifies records.
func Filter[T any](records []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(records))
next:
	for _, r := range records {
		for _, p := range active {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// Search matches when any of fields contains q, ignoring case.
// A blank q yields no constraint.
func Search[T any](q string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return nil
	}
	return func(r T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals keeps records whose field equals *want. A nil want yields no
// constraint.
func Equals[T any, V comparable](want *V, field func(T) V) Predicate[T] {
	if want == nil {
		return nil
	}
	v := *want
	return func(r T) bool {
		return field(r) == v
	}
}

// EqualsPtr is Equals for optional fields; an unset field never matches.
func EqualsPtr[T any, V comparable](want *V, field func(T) *V) Predicate[T] {
	if want == nil {
		return nil
	}
	v := *want
	return func(r T) bool {
		got := field(r)
		return got != nil && *got == v
	}
}

// DateRange keeps records whose YYYY-MM-DD field lies in [from, to]. Each
// bound is optional; unparseable bounds are ignored and unparseable record
// dates never match a set bound.
func DateRange[T any](from, to *string, field func(T) string) Predicate[T] {
	lo, hasLo := parseBound(from)
	hi, hasHi := parseBound(to)
	if !hasLo && !hasHi {
		return nil
	}
	return func(r T) bool {
		d, err := time.Parse(DateLayout, field(r))
		if err != nil {
			return false
		}
		if hasLo && d.Before(lo) {
			return false
		}
		if hasHi && d.After(hi) {
			return false
		}
		return true
	}
}

func parseBound(s *string) (time.Time, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Match wraps an arbitrary condition; a false enabled yields no constraint.
func Match[T any](enabled bool, fn func(T) bool) Predicate[T] {
	if !enabled {
		return nil
	}
	return fn
}
