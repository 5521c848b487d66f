// Package formula implements the first-order formula algebra:
// atomic predicate applications, negation, binary connectives, and the two
// quantifiers, together with α-equivalence-respecting equality,
// capture-avoiding substitution, canonical serialisation, and
// specialisation/generalisation.
//
// Formula is a sealed sum type; the unexported methods below are its vtable, and
// the only implementations live in this package.
package formula

import (
	"github.com/google/uuid"

	"tarski/internal/term"
)

// Formula is an immutable, freely-shared first-order formula. Structural
// equality and hashing are α-equivalence-respecting; use Equal and Hash
// rather than ==, since two α-equivalent formulas need not have identical
// Go representations.
type Formula interface {
	// Free returns the formula's free terms, first-seen order, deduplicated.
	Free() OrderedSet[term.FreeTerm]
	// Bound returns the formula's bound terms, first-seen order, deduplicated.
	Bound() OrderedSet[term.BoundTerm]
	// Serialize returns an α-invariant canonical encoding.
	Serialize() string

	// boundOrigins returns the identities of free terms that were consumed
	// to build some binder within this formula, at any nesting depth. It is
	// the disjointness-test target for capture avoidance — see DESIGN.md
	// for why this, rather than a literal bound()-marker comparison, is
	// what makes the two-kind term design's capture check actually sound.
	boundOrigins() OrderedSet[uuid.UUID]
	// substituteRaw applies sigma (keyed by either free or bound terms)
	// without restricting its domain or checking for capture — Substitute,
	// Specialise and Open perform their checks before calling down to this;
	// quantifier construction calls it with freshly minted bound terms as
	// images, which nothing can capture.
	substituteRaw(sigma map[term.Term]term.Term) Formula
	// serializeWith renders the node using a varids map shared across the
	// whole formula (built once by Serialize at the root).
	serializeWith(varids map[term.Term]int) string
	// print renders the node using a name environment that is extended as
	// printing descends into quantifiers.
	print(names map[term.Term]string) string

	sealedFormula()
}

// PredicateApplication is Pred(p, args)
type PredicateApplication struct {
	predicate Predicate
	args []term.Term
}

// NewPredicateApplication applies predicate to args. The argument count must
// match the predicate's declared arity.
func NewPredicateApplication(p Predicate, args...term.Term) (Formula, error) {
	if len(args) != p.Arity() {
		return nil, errf("predicate application", "predicate %q has arity %d, got %d args", p.Name(), p.Arity(), len(args))
	}
	cp := make([]term.Term, len(args))
	copy(cp, args)
	return &PredicateApplication{predicate: p, args: cp}, nil
}

func (p *PredicateApplication) sealedFormula() {}

// Predicate returns the applied predicate descriptor.
func (p *PredicateApplication) Predicate() Predicate { return p.predicate }

// Args returns the application's argument terms, in order.
func (p *PredicateApplication) Args() []term.Term {
	cp := make([]term.Term, len(p.args))
	copy(cp, p.args)
	return cp
}

func (p *PredicateApplication) Free() OrderedSet[term.FreeTerm] {
	var fs []term.FreeTerm
	for _, a := range p.args {
		if ft, ok := a.(term.FreeTerm); ok {
			fs = append(fs, ft)
		}
	}
	return NewOrderedSet(fs...)
}

func (p *PredicateApplication) Bound() OrderedSet[term.BoundTerm] {
	var bs []term.BoundTerm
	for _, a := range p.args {
		if bt, ok := a.(term.BoundTerm); ok {
			bs = append(bs, bt)
		}
	}
	return NewOrderedSet(bs...)
}

func (p *PredicateApplication) boundOrigins() OrderedSet[uuid.UUID] {
	return NewOrderedSet[uuid.UUID]()
}

func (p *PredicateApplication) substituteRaw(sigma map[term.Term]term.Term) Formula {
	args := make([]term.Term, len(p.args))
	for i, a := range p.args {
		if t, ok := sigma[a]; ok {
			args[i] = t
		} else {
			args[i] = a
		}
	}
	return &PredicateApplication{predicate: p.predicate, args: args}
}

// Negation is Neg(f).
type Negation struct {
	inner Formula
}

// NewNegation builds ¬f.
func NewNegation(f Formula) Formula {
	return &Negation{inner: f}
}

func (n *Negation) sealedFormula() {}

// Inner returns the negated formula.
func (n *Negation) Inner() Formula { return n.inner }

func (n *Negation) Free() OrderedSet[term.FreeTerm] { return n.inner.Free() }
func (n *Negation) Bound() OrderedSet[term.BoundTerm] { return n.inner.Bound() }
func (n *Negation) boundOrigins() OrderedSet[uuid.UUID] { return n.inner.boundOrigins() }
func (n *Negation) substituteRaw(sigma map[term.Term]term.Term) Formula {
	return &Negation{inner: n.inner.substituteRaw(sigma)}
}

// Op is a binary connective.
type Op int

const (
	Conj Op = iota // &
	Disj // |
	Impl // ->
)

func (o Op) String() string {
	switch o {
	case Conj:
		return "&"
	case Disj:
		return "|"
	case Impl:
		return "->"
	default:
		return "?"
	}
}

// BinaryConnective is Bin(op, l, r).
type BinaryConnective struct {
	left Formula
	op Op
	right Formula
}

// NewBinaryConnective builds left op right.
func NewBinaryConnective(left Formula, op Op, right Formula) Formula {
	return &BinaryConnective{left: left, op: op, right: right}
}

// Conjunction, Disjunction, and Implies are named combinators.
func Conjunction(l, r Formula) Formula { return NewBinaryConnective(l, Conj, r) }
func Disjunction(l, r Formula) Formula { return NewBinaryConnective(l, Disj, r) }
func Implies(l, r Formula) Formula { return NewBinaryConnective(l, Impl, r) }
func Not(f Formula) Formula { return NewNegation(f) }

func (b *BinaryConnective) sealedFormula() {}
func (b *BinaryConnective) Left() Formula { return b.left }
func (b *BinaryConnective) Right() Formula { return b.right }
func (b *BinaryConnective) Op() Op { return b.op }

func (b *BinaryConnective) Free() OrderedSet[term.FreeTerm] {
	return Union(b.left.Free(), b.right.Free())
}
func (b *BinaryConnective) Bound() OrderedSet[term.BoundTerm] {
	return Union(b.left.Bound(), b.right.Bound())
}
func (b *BinaryConnective) boundOrigins() OrderedSet[uuid.UUID] {
	return Union(b.left.boundOrigins(), b.right.boundOrigins())
}
func (b *BinaryConnective) substituteRaw(sigma map[term.Term]term.Term) Formula {
	return &BinaryConnective{left: b.left.substituteRaw(sigma), op: b.op, right: b.right.substituteRaw(sigma)}
}
