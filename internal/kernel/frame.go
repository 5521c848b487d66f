package kernel

import (
	"tarski/internal/formula"
	"tarski/internal/term"
)

// frame is one proof context. frames form an
// explicit stack rather than a process-wide mutable collection; lookups walk outward through the engine's frame slice rather than
// through any parent pointer, so that popping a frame makes its facts
// immediately invisible.
type frame struct {
	id int

	freeTerms []term.FreeTerm
	assumed []*Fact // assume()'d facts, in call order — drives direct_proof's conjunction

	// facts indexes every fact recorded directly in this frame, keyed by
	// its canonical serialization. Multiple facts can share a
	// serialization only if they differ in free-term identity (true
	// α-equivalent duplicates are rejected before insertion).
	facts map[string][]*Fact
}

func newFrame(id int, freeTerms []term.FreeTerm) *frame {
	return &frame{id: id, freeTerms: freeTerms, facts: make(map[string][]*Fact)}
}

func (f *frame) record(fact *Fact) {
	key := fact.Formula.Serialize()
	f.facts[key] = append(f.facts[key], fact)
}

// find returns a fact structurally equal (α-equivalence) to target already
// recorded directly in this frame.
func (f *frame) find(target formula.Formula) (*Fact, bool) {
	for _, candidate := range f.facts[target.Serialize()] {
		if formula.Equal(candidate.Formula, target) {
			return candidate, true
		}
	}
	return nil, false
}
