package formula

import (
	"github.com/google/uuid"

	"tarski/internal/term"
)

// Quantifier is the shared shape of Universal and Existential: a
// nonempty list of binders, each remembering the uuid of the FreeTerm it was
// minted from, plus a body formula written in terms of those binders.
type quantifier struct {
	binders []term.BoundTerm
	binderOrigin map[term.BoundTerm]uuid.UUID
	body Formula
}

// buildQuantifier closes over vars, replacing each with a freshly minted
// bound term tied to a single new Binder, and records each binder's origin
// so that later capture checks (Substitute, Specialise, Open) can test a
// candidate free term's identity against everything bound in scope — not
// just against the literal bound markers, which are always fresh and so
// would never collide under a naive comparison.
func buildQuantifier(vars []term.FreeTerm, body Formula) quantifier {
	b := term.NewBinder()
	binders := make([]term.BoundTerm, len(vars))
	origin := make(map[term.BoundTerm]uuid.UUID, len(vars))
	sigma := make(map[term.Term]term.Term, len(vars))
	for i, v := range vars {
		bt := term.NewBound(b)
		binders[i] = bt
		origin[bt] = v.ID()
		sigma[v] = bt
	}
	return quantifier{binders: binders, binderOrigin: origin, body: body.substituteRaw(sigma)}
}

func (q quantifier) free() OrderedSet[term.FreeTerm] { return q.body.Free() }

func (q quantifier) bound() OrderedSet[term.BoundTerm] {
	return Union(NewOrderedSet(q.binders...), q.body.Bound())
}

// boundOrigins unions this quantifier's own binder origins with whatever its
// body has already accumulated from nested quantifiers.
func (q quantifier) boundOrigins() OrderedSet[uuid.UUID] {
	own := make([]uuid.UUID, len(q.binders))
	for i, bt := range q.binders {
		own[i] = q.binderOrigin[bt]
	}
	return Union(NewOrderedSet(own...), q.body.boundOrigins())
}

// substituteRaw never touches this quantifier's own binders (sigma is
// keyed either by FreeTerm, which cannot collide with a BoundTerm, or by a
// BoundTerm belonging to an enclosing quantifier, which by construction is
// never one of q's own binders — see Specialise/Open for the only callers
// that substitute bound terms).
func (q quantifier) substituteRaw(sigma map[term.Term]term.Term) quantifier {
	return quantifier{binders: q.binders, binderOrigin: q.binderOrigin, body: q.body.substituteRaw(sigma)}
}

// Universal is Forall(vars, body).
type Universal struct {
	quantifier
}

// NewUniversal closes body under vars.
func NewUniversal(vars []term.FreeTerm, body Formula) Formula {
	return &Universal{quantifier: buildQuantifier(vars, body)}
}

func (u *Universal) sealedFormula() {}
func (u *Universal) Free() OrderedSet[term.FreeTerm] { return u.free() }
func (u *Universal) Bound() OrderedSet[term.BoundTerm] { return u.bound() }
func (u *Universal) boundOrigins() OrderedSet[uuid.UUID] { return u.quantifier.boundOrigins() }
func (u *Universal) Binders() []term.BoundTerm { return u.binders }
func (u *Universal) Body() Formula { return u.body }
func (u *Universal) substituteRaw(sigma map[term.Term]term.Term) Formula {
	return &Universal{quantifier: u.quantifier.substituteRaw(sigma)}
}

// Existential is Exists(vars, body).
type Existential struct {
	quantifier
}

// NewExistential closes body under vars.
func NewExistential(vars []term.FreeTerm, body Formula) Formula {
	return &Existential{quantifier: buildQuantifier(vars, body)}
}

func (e *Existential) sealedFormula() {}
func (e *Existential) Free() OrderedSet[term.FreeTerm] { return e.free() }
func (e *Existential) Bound() OrderedSet[term.BoundTerm] { return e.bound() }
func (e *Existential) boundOrigins() OrderedSet[uuid.UUID] { return e.quantifier.boundOrigins() }
func (e *Existential) Binders() []term.BoundTerm { return e.binders }
func (e *Existential) Body() Formula { return e.body }
func (e *Existential) substituteRaw(sigma map[term.Term]term.Term) Formula {
	return &Existential{quantifier: e.quantifier.substituteRaw(sigma)}
}

// siblingOrigins returns the origin uuids of every binder in binders except
// the one at skip.
func siblingOrigins(binders []term.BoundTerm, origin map[term.BoundTerm]uuid.UUID, skip int) OrderedSet[uuid.UUID] {
	var out []uuid.UUID
	for i, bt := range binders {
		if i == skip {
			continue
		}
		out = append(out, origin[bt])
	}
	return NewOrderedSet(out...)
}

// Generalize wraps f in a Universal over ts, or returns f unchanged if ts
// is empty.
func Generalize(f Formula, ts []term.FreeTerm) Formula {
	if len(ts) == 0 {
		return f
	}
	return NewUniversal(ts, f)
}

// Specialise instantiates the index-th bound variable of a Universal with t,
// leaving any remaining binders in place. t must not be bound anywhere
// within scope — by a sibling binder of this same quantifier, or by any
// quantifier nested in the body — or the result would capture t.
func Specialise(u *Universal, index int, t term.FreeTerm) (Formula, error) {
	if index < 0 || index >= len(u.binders) {
		return nil, errf("specialise", "binder index %d out of range (%d binders)", index, len(u.binders))
	}
	forbidden := Union(siblingOrigins(u.binders, u.binderOrigin, index), u.body.boundOrigins())
	if forbidden.Contains(t.ID()) {
		return nil, errf("specialise", "%s is bound within the quantifier's scope", t)
	}
	sigma := map[term.Term]term.Term{u.binders[index]: t}
	remaining := make([]term.BoundTerm, 0, len(u.binders)-1)
	for i, bt := range u.binders {
		if i != index {
			remaining = append(remaining, bt)
		}
	}
	newBody := u.body.substituteRaw(sigma)
	if len(remaining) == 0 {
		return newBody, nil
	}
	origin := make(map[term.BoundTerm]uuid.UUID, len(remaining))
	for _, bt := range remaining {
		origin[bt] = u.binderOrigin[bt]
	}
	return &Universal{quantifier: quantifier{binders: remaining, binderOrigin: origin, body: newBody}}, nil
}

// Open instantiates every bound variable of an Existential at once with
// fresh free terms, one per binder, in binder order.
// Since all binders are eliminated together there are no siblings left to
// check against — only the body's own nested bindings can capture.
func Open(e *Existential, fresh []term.FreeTerm) (Formula, error) {
	if len(fresh) != len(e.binders) {
		return nil, errf("instantiate", "existential has %d binders, got %d fresh terms", len(e.binders), len(fresh))
	}
	forbidden := e.body.boundOrigins()
	sigma := make(map[term.Term]term.Term, len(fresh))
	for i, bt := range e.binders {
		if forbidden.Contains(fresh[i].ID()) {
			return nil, errf("instantiate", "%s is bound within the quantifier's scope", fresh[i])
		}
		sigma[bt] = fresh[i]
	}
	return e.body.substituteRaw(sigma), nil
}
