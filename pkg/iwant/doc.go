// Package iwant defines the capability that lets a value say whether it is
// the one the caller wants to keep going with, plus the built-in carriers
// that already speak it.
//
// A type opts in by implementing Wanter. If it also holds a payload that the
// caller needs on the wanted branch, it implements Carrier[T]:
// - Wanter: IsWanted() bool, side-effect free, must not consume the value
// - Carrier[T]: Wanter plus Unwrap() T
//
// Built-in carriers:
// - Option[T]: Some/None, FromOk, FromPtr, FromKey
// - Result[T]: Success/Fail/Cancel, FromPair
// - Cond: a plain boolean check
//
// The helpers that branch on a carrier live in want (comma-ok style) and
// scope (early return / continue from an enclosing scope).
package iwant
