// Package term defines the two kinds of individual variables used by the
// formula algebra: free terms, introduced by opening a proof context or by
// existential instantiation, and bound terms, created only as part of
// constructing a quantifier.
//
// Both kinds carry a uuid.UUID as their nominal identity rather than relying
// on pointer identity: this keeps Term values comparable with ==, usable as
// map keys, and safe to log.
package term

import "github.com/google/uuid"

// Term is implemented by FreeTerm and BoundTerm. It has no methods beyond the
// marker below: the formula package is the sole consumer of term identity,
// and it type-switches on the concrete types rather than dispatching through
// an interface method.
type Term interface {
	isTerm()
}

// FreeTerm is an individual variable introduced by opening a proof context or
// by existential instantiation. Two FreeTerm values are
// the same variable iff their IDs are equal; the Hint is display-only and
// never affects identity or equality.
type FreeTerm struct {
	id uuid.UUID
	hint string
}

// NewFree allocates a fresh free term. An empty hint means "no display hint".
func NewFree(hint string) FreeTerm {
	return FreeTerm{id: uuid.New(), hint: hint}
}

func (FreeTerm) isTerm() {}

// ID returns the term's nominal identity.
func (t FreeTerm) ID() uuid.UUID { return t.id }

// Hint returns the caller-supplied display hint, if any.
func (t FreeTerm) Hint() (string, bool) {
	if t.hint == "" {
		return "", false
	}
	return t.hint, true
}

func (t FreeTerm) String() string {
	if t.hint != "" {
		return t.hint
	}
	return t.id.String()
}

// Binder is the identity of the quantifier that introduces a group of bound
// terms. It has no structure beyond uniqueness.
type Binder uuid.UUID

// NewBinder allocates a fresh binder identity for a quantifier under
// construction.
func NewBinder() Binder { return Binder(uuid.New()) }

// BoundTerm is a quantifier-local marker: it is only ever
// constructed as part of building a Universal or Existential formula and
// must never occur free in any formula.
type BoundTerm struct {
	id uuid.UUID
	binder Binder
}

// NewBound allocates a fresh bound term scoped to the given binder.
func NewBound(b Binder) BoundTerm {
	return BoundTerm{id: uuid.New(), binder: b}
}

func (BoundTerm) isTerm() {}

// ID returns the term's nominal identity.
func (t BoundTerm) ID() uuid.UUID { return t.id }

// Binder returns the identity of the quantifier that introduced this term.
func (t BoundTerm) Binder() Binder { return t.binder }
