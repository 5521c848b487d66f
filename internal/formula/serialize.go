package formula

import (
	"fmt"
	"hash/fnv"
	"strings"

	"tarski/internal/term"
)

// buildVarids assigns every free and bound term appearing in f a small
// integer, in first-seen order over Free() then Bound(). Two α-equivalent
// formulas assign the same integer to corresponding positions regardless of
// the underlying uuids, which is what makes serializeWith's output
// α-invariant.
func buildVarids(f Formula) map[term.Term]int {
	varids := make(map[term.Term]int)
	n := 0
	for _, ft := range f.Free().Items() {
		if _, ok := varids[ft]; !ok {
			varids[ft] = n
			n++
		}
	}
	for _, bt := range f.Bound().Items() {
		if _, ok := varids[bt]; !ok {
			varids[bt] = n
			n++
		}
	}
	return varids
}

func serializeRoot(f Formula) string {
	return f.serializeWith(buildVarids(f))
}

func (p *PredicateApplication) Serialize() string { return serializeRoot(p) }
func (n *Negation) Serialize() string { return serializeRoot(n) }
func (b *BinaryConnective) Serialize() string { return serializeRoot(b) }
func (u *Universal) Serialize() string { return serializeRoot(u) }
func (e *Existential) Serialize() string { return serializeRoot(e) }

func (p *PredicateApplication) serializeWith(varids map[term.Term]int) string {
	ids := make([]string, len(p.args))
	for i, a := range p.args {
		ids[i] = fmt.Sprintf("#%d", varids[a])
	}
	return fmt.Sprintf("P(%s,%d)[%s]", p.predicate.Name(), p.predicate.Arity(), strings.Join(ids, ","))
}

func (n *Negation) serializeWith(varids map[term.Term]int) string {
	return "~(" + n.inner.serializeWith(varids) + ")"
}

func (b *BinaryConnective) serializeWith(varids map[term.Term]int) string {
	return "(" + b.left.serializeWith(varids) + " " + b.op.String() + " " + b.right.serializeWith(varids) + ")"
}

func (q quantifier) serializeBinders(varids map[term.Term]int) string {
	ids := make([]string, len(q.binders))
	for i, bt := range q.binders {
		ids[i] = fmt.Sprintf("#%d", varids[bt])
	}
	return strings.Join(ids, ",")
}

func (u *Universal) serializeWith(varids map[term.Term]int) string {
	return "A[" + u.serializeBinders(varids) + "](" + u.body.serializeWith(varids) + ")"
}

func (e *Existential) serializeWith(varids map[term.Term]int) string {
	return "E[" + e.serializeBinders(varids) + "](" + e.body.serializeWith(varids) + ")"
}

// Equal reports α-equivalence: identical free-term identities and identical
// canonical serialization. Two formulas built from disjoint
// free terms are never Equal even if they would print identically.
func Equal(a, b Formula) bool {
	af, bf := a.Free().Items(), b.Free().Items()
	if len(af) != len(bf) {
		return false
	}
	for i := range af {
		if af[i] != bf[i] {
			return false
		}
	}
	return a.Serialize() == b.Serialize()
}

// Hash is consistent with Equal: α-equivalent formulas with the same free
// terms hash identically.
func Hash(f Formula) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(f.Serialize()))
	for _, ft := range f.Free().Items() {
		id := ft.ID()
		_, _ = h.Write(id[:])
	}
	return h.Sum64()
}
