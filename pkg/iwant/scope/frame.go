package scope

import (
	"errors"
	"fmt"
)

// ErrScopeClosed is the panic raised when a scope is diverted after it finished
var ErrScopeClosed = errors.New("scope: diverted after scope finished")

type Kind int

const (
	Returned Kind = iota + 1
	Continued
	Broken
)

func (k Kind) String() string {
	switch k {
	case Returned:
		return "return"
	case Continued:
		return "continue"
	case Broken:
		return "break"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Divert describes one early exit taken by a scope
type Divert struct {
	Kind  Kind
	Scope string
}

// exit is the panic value carrying a diversion to its owning frame
type exit struct {
	owner *frame
	kind  Kind
}

func (e *exit) String() string {
	return fmt.Sprintf("scope %q: %s escaped its scope", e.owner.cfg.name, e.kind)
}

type frame struct {
	cfg    config
	closed bool
}

func newFrame(opts []Option) *frame {
	return &frame{cfg: newConfig(opts)}
}

func (f *frame) divert(kind Kind) {
	if f.closed {
		panic(fmt.Errorf("%w: %s %q", ErrScopeClosed, kind, f.cfg.name))
	}
	panic(&exit{owner: f, kind: kind})
}

// catch takes a recovered value. It returns the diversion kind if the value
// belongs to f and re-panics with anything else.
func (f *frame) catch(r any) Kind {
	e, ok := r.(*exit)
	if !ok || e.owner != f {
		panic(r)
	}
	if f.cfg.onDivert != nil {
		f.cfg.onDivert(Divert{Kind: e.kind, Scope: f.cfg.name})
	}
	return e.kind
}
