package iwant

// Cond is a boolean check used as a Wanter, e.g. Cond(n > 0).
type Cond bool

func (c Cond) IsWanted() bool { return bool(c) }

// Unwrap returns true so Cond can stand in as a Carrier[bool]. A false
// condition panics with ErrNotWanted like the other built-in carriers.
func (c Cond) Unwrap() bool {
	if !c {
		panic(ErrNotWanted)
	}
	return true
}

// Check is FromOk under the name used for boolean-guarded values.
func Check[T any](v T, ok bool) Option[T] {
	return FromOk(v, ok)
}
