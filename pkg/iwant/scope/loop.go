package scope

import (
	"iter"
	"slices"
)

// Iteration is the body of a loop scope. Continue ends the current element,
// Break ends the loop.
type Iteration struct {
	*frame
}

func (it *Iteration) Continue() {
	it.divert(Continued)
}

func (it *Iteration) Break() {
	it.divert(Broken)
}

// Range calls body for each element of seq
func Range[E any](seq iter.Seq[E], body func(it *Iteration, e E), opts ...Option) {
	it := &Iteration{frame: newFrame(opts)}
	defer func() { it.closed = true }()

	for e := range seq {
		if !it.step(func() { body(it, e) }) {
			return
		}
	}
}

// Range2 calls body for each pair of seq
func Range2[K, V any](seq iter.Seq2[K, V], body func(it *Iteration, k K, v V), opts ...Option) {
	it := &Iteration{frame: newFrame(opts)}
	defer func() { it.closed = true }()

	for k, v := range seq {
		if !it.step(func() { body(it, k, v) }) {
			return
		}
	}
}

// Slice calls body for each index and element of items
func Slice[E any](items []E, body func(it *Iteration, i int, e E), opts ...Option) {
	Range2(slices.All(items), body, opts...)
}

// step runs one element and reports whether the loop goes on
func (it *Iteration) step(fn func()) (next bool) {
	defer func() {
		if r := recover(); r != nil {
			next = it.catch(r) != Broken
		}
	}()
	fn()
	return true
}
