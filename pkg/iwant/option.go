package iwant

// Option holds a value or nothing. Only Some is wanted.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// FromOk adapts the comma-ok idiom (map lookup, type assertion, channel receive).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr is Some(*p) for a non-nil p and None otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromKey looks k up in m.
func FromKey[K comparable, V any](m map[K]V, k K) Option[V] {
	v, ok := m[k]
	return FromOk(v, ok)
}

func (o Option[T]) IsWanted() bool { return o.valid }

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value or panics with ErrNotWanted.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic(ErrNotWanted)
	}
	return o.v
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.v, o.valid }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}
