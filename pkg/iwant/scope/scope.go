package scope

// Unit is the result type of scopes that return nothing
type Unit = struct{}

// Scope is a function body that can return early from inside an expression
type Scope[R any] struct {
	*frame
	value R
}

// Run calls body and returns its result, or the value of the first
// Return/ReturnWith made through s.
func Run[R any](body func(s *Scope[R]) R, opts ...Option) (out R) {
	s := &Scope[R]{frame: newFrame(opts)}
	defer func() {
		s.closed = true
		if r := recover(); r != nil {
			s.catch(r)
			out = s.value
		}
	}()
	return body(s)
}

// Do is Run for bodies without a result
func Do(body func(s *Scope[Unit]), opts ...Option) {
	Run(func(s *Scope[Unit]) Unit {
		body(s)
		return Unit{}
	}, opts...)
}

// Return leaves the scope with the zero value of R
func (s *Scope[R]) Return() {
	var zero R
	s.ReturnWith(zero)
}

// ReturnWith leaves the scope with v
func (s *Scope[R]) ReturnWith(v R) {
	if !s.closed {
		s.value = v
	}
	s.divert(Returned)
}
