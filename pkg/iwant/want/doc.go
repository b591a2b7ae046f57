// Package want contains comma-ok helpers over iwant carriers. Each helper
// evaluates its carrier once and tells the caller which branch was taken; the
// caller writes the continue or return itself.
//
// Highlights:
// - Unwrap/UnwrapOrDo: payload plus ok flag, optional fallback side effect
// - UnwrapOr: payload or a fallback value
// - Match: reduce to a value via wanted/unwanted handlers
// - Require: boolean guard with a fallback side effect
// - Wanted/Collect: drop unwanted carriers from a sequence or slice
// - All/Any: combine several queries
//
// For early return and continue without the if statement, see package scope.
package want
