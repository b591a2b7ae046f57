package want

import (
	"iter"

	"github.com/ib-77/iwant/pkg/iwant"
)

func Unwrap[T any](c iwant.Carrier[T]) (T, bool) {
	if iwant.Wants(c) {
		return c.Unwrap(), true
	}
	var zero T
	return zero, false
}

// UnwrapOrDo runs do once when c is unwanted. do may be nil.
func UnwrapOrDo[T any](c iwant.Carrier[T], do func()) (T, bool) {
	v, ok := Unwrap(c)
	if !ok && do != nil {
		do()
	}
	return v, ok
}

func UnwrapOr[T any](c iwant.Carrier[T], fallback T) T {
	if v, ok := Unwrap(c); ok {
		return v
	}
	return fallback
}

func Match[T, R any](c iwant.Carrier[T],
	onWanted func(v T) R,
	onUnwanted func() R) R {

	if v, ok := Unwrap(c); ok {
		return onWanted(v)
	}
	return onUnwanted()
}

// Require returns cond and runs do when cond is false.
func Require(cond bool, do func()) bool {
	if !cond && do != nil {
		do()
	}
	return cond
}

// Wanted yields the payloads of wanted carriers and skips the rest.
func Wanted[T any, C iwant.Carrier[T]](seq iter.Seq[C]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range seq {
			v, ok := Unwrap[T](c)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect returns the payloads of the wanted carriers in order and how many
// were skipped.
func Collect[T any, C iwant.Carrier[T]](cs []C) ([]T, int) {
	out := make([]T, 0, len(cs))
	for _, c := range cs {
		v, ok := Unwrap[T](c)
		if !ok {
			continue
		}
		out = append(out, v)
	}
	return out, len(cs) - len(out)
}

// All is true when every w is wanted; it stops at the first unwanted one.
func All(ws ...iwant.Wanter) bool {
	for _, w := range ws {
		if !iwant.Wants(w) {
			return false
		}
	}
	return true
}

// Any is true when at least one w is wanted.
func Any(ws ...iwant.Wanter) bool {
	for _, w := range ws {
		if iwant.Wants(w) {
			return true
		}
	}
	return false
}
