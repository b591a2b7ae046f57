package scope

import "github.com/ib-77/iwant/pkg/iwant"

// UnwrapOrDo returns the payload of c when it is wanted. Otherwise it calls
// do, which either diverts an enclosing scope or supplies the value.
func UnwrapOrDo[T any](c iwant.Carrier[T], do func() T) T {
	if iwant.Wants(c) {
		return c.Unwrap()
	}
	return do()
}

func UnwrapOrContinue[T any](it *Iteration, c iwant.Carrier[T]) T {
	return UnwrapOrDo(c, never[T](it.Continue))
}

func UnwrapOrBreak[T any](it *Iteration, c iwant.Carrier[T]) T {
	return UnwrapOrDo(c, never[T](it.Break))
}

// UnwrapOrReturn leaves s with the zero value of R when c is unwanted
func UnwrapOrReturn[T, R any](s *Scope[R], c iwant.Carrier[T]) T {
	return UnwrapOrDo(c, never[T](s.Return))
}

func UnwrapOrFalse[T any](s *Scope[bool], c iwant.Carrier[T]) T {
	return UnwrapOrVal(s, c, false)
}

func UnwrapOrTrue[T any](s *Scope[bool], c iwant.Carrier[T]) T {
	return UnwrapOrVal(s, c, true)
}

func UnwrapOrVal[T, R any](s *Scope[R], c iwant.Carrier[T], v R) T {
	return UnwrapOrDo(c, never[T](func() { s.ReturnWith(v) }))
}

// Require leaves s with the zero value of R when cond is false
func Require[R any](s *Scope[R], cond bool) {
	if !cond {
		s.Return()
	}
}

func RequireOr[R any](s *Scope[R], cond bool, v R) {
	if !cond {
		s.ReturnWith(v)
	}
}

func RequireContinue(it *Iteration, cond bool) {
	if !cond {
		it.Continue()
	}
}

// never turns a diverting call into an UnwrapOrDo fallback
func never[T any](divert func()) func() T {
	return func() T {
		divert()
		panic("scope: fallback did not divert")
	}
}
