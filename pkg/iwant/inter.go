package iwant

// Wanter reports whether a value is the variant the caller wants
type Wanter interface {
	// IsWanted returns true for the wanted variant only
	IsWanted() bool
}

// Carrier is a Wanter that yields a payload on the wanted branch
type Carrier[T any] interface {
	Wanter
	// Unwrap returns the payload. Calling it on an unwanted value is the
	// carrier's own failure mode; the built-in carriers panic.
	Unwrap() T
}

// Wants is IsWanted that treats a nil Wanter as unwanted. A typed nil
// inside w is still asked: nil slices, maps and pointer receivers can answer.
func Wants(w Wanter) bool {
	if w == nil {
		return false
	}
	return w.IsWanted()
}
