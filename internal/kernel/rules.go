package kernel

import (
	"tarski/internal/formula"
	"tarski/internal/term"
)

// Assume adds f to the current frame's assumption list and records it as a
// fact.
func (e *Engine) Assume(f formula.Formula) (*Fact, error) {
	if len(e.frames) == 0 {
		return nil, e.errf("assume", "no context is open")
	}
	fact, err := e.record("assume", f, LabelAssumption)
	if err != nil {
		return nil, err
	}
	e.top().assumed = append(e.top().assumed, fact)
	return fact, nil
}

// DirectProof requires f to be a fact already recorded directly in the top
// frame. It forms (A1 &... & Ak) -> f from the frame's assumptions in
// order (or just f if there are none), generalises over whichever of the
// frame's own free terms remain free in that result, pops the frame, and
// records the outcome in the newly exposed top.
func (e *Engine) DirectProof(f formula.Formula) (*Fact, error) {
	if len(e.frames) < 2 {
		return nil, e.errf("direct_proof", "no context is open to close")
	}
	closing := e.top()
	goalFact, ok := closing.find(f)
	if !ok {
		return nil, e.errf("direct_proof", "formula %s is not a recorded fact in the current frame", f.Serialize())
	}

	refs := append([]*Fact{}, closing.assumed...)
	refs = append(refs, goalFact)

	conclusion := f
	if len(closing.assumed) > 0 {
		antecedent := closing.assumed[0].Formula
		for _, a := range closing.assumed[1:] {
			antecedent = formula.Conjunction(antecedent, a.Formula)
		}
		conclusion = formula.Implies(antecedent, f)
	}

	var generalizeOver []term.FreeTerm
	remaining := conclusion.Free()
	for _, ft := range closing.freeTerms {
		if remaining.Contains(ft) {
			generalizeOver = append(generalizeOver, ft)
		}
	}
	generalised := formula.Generalize(conclusion, generalizeOver)

	for _, ft := range closing.freeTerms {
		delete(e.live, ft)
		e.alloc.Discard(ft)
	}
	e.frames = e.frames[:len(e.frames)-1]

	return e.record("direct_proof", generalised, LabelDirectProof, refs...)
}

// Specialise requires f to be a recorded Universal fact over len(ts)
// binders, and applies specialise right-to-left across ts.
func (e *Engine) Specialise(f *Fact, ts []term.FreeTerm) (*Fact, error) {
	if err := e.checkVisible("specialise", f); err != nil {
		return nil, err
	}
	univ, ok := f.Formula.(*formula.Universal)
	if !ok {
		return nil, e.errf("specialise", "fact %d is not a universal", f.Serial)
	}
	if len(ts) != len(univ.Binders()) {
		return nil, e.errf("specialise", "fact %d binds %d variables, got %d terms", f.Serial, len(univ.Binders()), len(ts))
	}
	for _, t := range ts {
		if _, ok := e.live[t]; !ok {
			return nil, e.errf("specialise", "free term %s is not live in any open frame", t)
		}
	}

	var current formula.Formula = univ
	for i := len(ts) - 1; i >= 0; i-- {
		u, ok := current.(*formula.Universal)
		if !ok {
			return nil, e.errf("specialise", "fact %d ran out of binders before exhausting the substitution list", f.Serial)
		}
		specialised, err := formula.Specialise(u, len(u.Binders())-1, ts[i])
		if err != nil {
			return nil, e.errf("specialise", "%v", err)
		}
		current = specialised
	}

	return e.record("specialise", current, LabelUniversalSpecialise, f)
}

// Instantiate requires f to be a recorded Existential fact; it allocates
// one fresh free term per binder in the current frame, substitutes them
// into the body, and records the result.
func (e *Engine) Instantiate(f *Fact, hints []string) ([]term.FreeTerm, *Fact, error) {
	if err := e.checkVisible("instantiate", f); err != nil {
		return nil, nil, err
	}
	exists, ok := f.Formula.(*formula.Existential)
	if !ok {
		return nil, nil, e.errf("instantiate", "fact %d is not an existential", f.Serial)
	}
	if len(e.frames) == 0 {
		return nil, nil, e.errf("instantiate", "no context is open")
	}
	n := len(exists.Binders())
	if hints != nil && len(hints) != n {
		return nil, nil, e.errf("instantiate", "existential binds %d variables, got %d hints", n, len(hints))
	}
	fresh := make([]term.FreeTerm, n)
	for i := range fresh {
		hint := ""
		if hints != nil {
			hint = hints[i]
		}
		fresh[i] = term.NewFree(hint)
	}

	opened, err := formula.Open(exists, fresh)
	if err != nil {
		return nil, nil, e.errf("instantiate", "%v", err)
	}

	fr := e.top()
	for _, ft := range fresh {
		e.live[ft] = fr.id
	}
	fr.freeTerms = append(fr.freeTerms, fresh...)

	fact, err := e.record("instantiate", opened, LabelExistentialInstantiate, f)
	if err != nil {
		return nil, nil, err
	}
	return fresh, fact, nil
}

// Conjunction records p & q given facts p and q.
func (e *Engine) Conjunction(p, q *Fact) (*Fact, error) {
	if err := e.checkVisible("conjunction", p, q); err != nil {
		return nil, err
	}
	return e.record("conjunction", formula.Conjunction(p.Formula, q.Formula), LabelConjunction, p, q)
}

// DeduceLeft requires pq to be a recorded conjunction and records its left
// conjunct.
func (e *Engine) DeduceLeft(pq *Fact) (*Fact, error) {
	if err := e.checkVisible("deduce_left", pq); err != nil {
		return nil, err
	}
	bc, ok := pq.Formula.(*formula.BinaryConnective)
	if !ok || bc.Op() != formula.Conj {
		return nil, e.errf("deduce_left", "fact %d is not a conjunction", pq.Serial)
	}
	return e.record("deduce_left", bc.Left(), LabelDeduceLeft, pq)
}

// DeduceRight is the mirror of DeduceLeft.
func (e *Engine) DeduceRight(pq *Fact) (*Fact, error) {
	if err := e.checkVisible("deduce_right", pq); err != nil {
		return nil, err
	}
	bc, ok := pq.Formula.(*formula.BinaryConnective)
	if !ok || bc.Op() != formula.Conj {
		return nil, e.errf("deduce_right", "fact %d is not a conjunction", pq.Serial)
	}
	return e.record("deduce_right", bc.Right(), LabelDeduceRight, pq)
}

// ModusPonens records Q given a recorded implication P->Q, searching the
// open frame chain for a fact matching P. Whether this one-argument form is
// sound when the antecedent only happens to be in scope, rather than having
// been derived for this purpose, is left for the caller to judge; this
// kernel simply requires the antecedent to be present.
func (e *Engine) ModusPonens(impl *Fact) (*Fact, error) {
	if err := e.checkVisible("modus_ponens", impl); err != nil {
		return nil, err
	}
	bc, ok := impl.Formula.(*formula.BinaryConnective)
	if !ok || bc.Op() != formula.Impl {
		return nil, e.errf("modus_ponens", "fact %d is not an implication", impl.Serial)
	}
	antecedent, ok := e.lookup(bc.Left())
	if !ok {
		return nil, e.errf("modus_ponens", "antecedent of fact %d is not a known fact", impl.Serial)
	}
	return e.record("modus_ponens", bc.Right(), LabelModusPonens, impl, antecedent)
}

// ModusPonens2 is the two-argument form: given fact p (the antecedent) and
// goal formula q, it searches the open frame chain for an implication
// p -> q and, if found, records q.
func (e *Engine) ModusPonens2(p *Fact, q formula.Formula) (*Fact, error) {
	if err := e.checkVisible("modus_ponens", p); err != nil {
		return nil, err
	}
	impl, ok := e.lookup(formula.Implies(p.Formula, q))
	if !ok {
		return nil, e.errf("modus_ponens", "no known implication from fact %d to the given goal", p.Serial)
	}
	return e.record("modus_ponens", q, LabelModusPonens, impl, p)
}

// ModusTollens requires negQ to be ¬Q and pImplQ to be P->Q' with Q'
// α-equal to Q; it records ¬P.
func (e *Engine) ModusTollens(negQ, pImplQ *Fact) (*Fact, error) {
	if err := e.checkVisible("modus_tollens", negQ, pImplQ); err != nil {
		return nil, err
	}
	neg, ok := negQ.Formula.(*formula.Negation)
	if !ok {
		return nil, e.errf("modus_tollens", "fact %d is not a negation", negQ.Serial)
	}
	impl, ok := pImplQ.Formula.(*formula.BinaryConnective)
	if !ok || impl.Op() != formula.Impl {
		return nil, e.errf("modus_tollens", "fact %d is not an implication", pImplQ.Serial)
	}
	if !formula.Equal(neg.Inner(), impl.Right()) {
		return nil, e.errf("modus_tollens", "fact %d does not negate the consequent of fact %d", negQ.Serial, pImplQ.Serial)
	}
	return e.record("modus_tollens", formula.Not(impl.Left()), LabelModusTollens, negQ, pImplQ)
}

// TertiumNonDatur records p | ~p unconditionally.
func (e *Engine) TertiumNonDatur(p formula.Formula) (*Fact, error) {
	return e.record("tertium_non_datur", formula.Disjunction(p, formula.Not(p)), LabelTertiumNonDatur)
}

// DisjunctionElimination requires facts P->R, Q->R, and P|Q; it records R.
func (e *Engine) DisjunctionElimination(pImplR, qImplR, pOrQ *Fact) (*Fact, error) {
	if err := e.checkVisible("disjunction_elimination", pImplR, qImplR, pOrQ); err != nil {
		return nil, err
	}
	left, ok := pImplR.Formula.(*formula.BinaryConnective)
	if !ok || left.Op() != formula.Impl {
		return nil, e.errf("disjunction_elimination", "fact %d is not an implication", pImplR.Serial)
	}
	right, ok := qImplR.Formula.(*formula.BinaryConnective)
	if !ok || right.Op() != formula.Impl {
		return nil, e.errf("disjunction_elimination", "fact %d is not an implication", qImplR.Serial)
	}
	if !formula.Equal(left.Right(), right.Right()) {
		return nil, e.errf("disjunction_elimination", "facts %d and %d do not share a consequent", pImplR.Serial, qImplR.Serial)
	}
	disj, ok := pOrQ.Formula.(*formula.BinaryConnective)
	if !ok || disj.Op() != formula.Disj {
		return nil, e.errf("disjunction_elimination", "fact %d is not a disjunction", pOrQ.Serial)
	}
	if !formula.Equal(disj.Left(), left.Left()) || !formula.Equal(disj.Right(), right.Left()) {
		return nil, e.errf("disjunction_elimination", "fact %d's disjuncts do not match the implications' antecedents", pOrQ.Serial)
	}
	return e.record("disjunction_elimination", left.Right(), LabelDisjunctionElim, pImplR, qImplR, pOrQ)
}

// NonContradiction records ~(P & ~P) unconditionally.
func (e *Engine) NonContradiction(p formula.Formula) (*Fact, error) {
	return e.record("non_contradiction", formula.Not(formula.Conjunction(p, formula.Not(p))), LabelNonContradiction)
}

// SubstituteEqual requires eq's formula to be Equal(x,y); f must be a
// recorded fact, and fPrime a goal formula, such that substituting both
// sides of the equality down to a single fresh term z makes f and fPrime
// identical. It then records fPrime.
func (e *Engine) SubstituteEqual(f *Fact, fPrime formula.Formula, eq *Fact) (*Fact, error) {
	if err := e.checkVisible("substitute_equal", f, eq); err != nil {
		return nil, err
	}
	pred, ok := eq.Formula.(*formula.PredicateApplication)
	if !ok || pred.Predicate().Name() != "Equal" || pred.Predicate().Arity() != 2 {
		return nil, e.errf("substitute_equal", "fact %d is not an Equal fact", eq.Serial)
	}
	args := pred.Args()
	x, ok1 := args[0].(term.FreeTerm)
	y, ok2 := args[1].(term.FreeTerm)
	if !ok1 || !ok2 {
		return nil, e.errf("substitute_equal", "fact %d's Equal arguments are not free terms", eq.Serial)
	}

	z := term.NewFree("")
	sigma := map[term.FreeTerm]term.Term{x: z, y: z}

	merged, err := formula.Substitute(f.Formula, sigma)
	if err != nil {
		return nil, e.errf("substitute_equal", "%v", err)
	}
	mergedPrime, err := formula.Substitute(fPrime, sigma)
	if err != nil {
		return nil, e.errf("substitute_equal", "%v", err)
	}
	if !formula.Equal(merged, mergedPrime) {
		return nil, e.errf("substitute_equal", "fact %d and the given goal do not coincide once %s and %s are merged", f.Serial, x, y)
	}

	return e.record("substitute_equal", fPrime, LabelEqualitySubstitution, f, eq)
}
