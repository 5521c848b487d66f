package kernel

import (
	"io"

	"go.uber.org/zap"

	"tarski/internal/formula"
	"tarski/internal/naming"
	"tarski/internal/term"
)

// Engine is a single proof session: a serial counter, a stack of
// context frames, and the process-wide name allocator used to render
// transcript lines. An Engine is the sole mutator of its own state and
// shares nothing with other Engine instances.
type Engine struct {
	frames []*frame
	nextSerial int
	nextFrame int
	live map[term.FreeTerm]int // free term -> owning frame id, while its frame is open

	alloc *naming.FreeAllocator
	log *zap.Logger
	transcript io.Writer
}

// New constructs an engine with axioms injected into the outermost frame,
// each recorded with justification Axiom and no premises.
func New(axioms []formula.Formula, transcript io.Writer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		live: make(map[term.FreeTerm]int),
		alloc: naming.NewFreeAllocator(),
		log: log,
		transcript: transcript,
	}
	root := newFrame(e.nextFrame, nil)
	e.nextFrame++
	e.frames = append(e.frames, root)
	for _, ax := range axioms {
		fact := e.newFact(ax, LabelAxiom, nil)
		root.record(fact)
		e.emit(fact, 0)
	}
	return e
}

func (e *Engine) top() *frame { return e.frames[len(e.frames)-1] }

func (e *Engine) newFact(f formula.Formula, label string, refs []*Fact) *Fact {
	e.nextSerial++
	ids := make([]int, len(refs))
	for i, r := range refs {
		ids[i] = r.Serial
	}
	return &Fact{Serial: e.nextSerial, Formula: f, Justification: label, References: ids, frameID: e.top().id}
}

// lookup finds a fact structurally equal to target anywhere in the open
// frame chain, innermost first — facts known here or in any enclosing
// context.
func (e *Engine) lookup(target formula.Formula) (*Fact, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if fact, ok := e.frames[i].find(target); ok {
			return fact, true
		}
	}
	return nil, false
}

func (e *Engine) checkLive(op string, f formula.Formula) error {
	for _, ft := range f.Free().Items() {
		if _, ok := e.live[ft]; !ok {
			return e.errf(op, "free term %s is not live in any open frame", ft)
		}
	}
	return nil
}

// checkVisible enforces that every premise referenced by a new fact must be
// visible from the frame chain as it stands right now. A fact recorded in
// a frame that has since been popped (e.g. by direct_proof) is no longer
// visible, even though the caller may still be holding a *Fact pointer to
// it.
func (e *Engine) checkVisible(op string, facts...*Fact) error {
	for _, fact := range facts {
		visible := false
		for _, fr := range e.frames {
			if fr.id == fact.frameID {
				visible = true
				break
			}
		}
		if !visible {
			return e.errf(op, "fact %d is not visible from any open frame", fact.Serial)
		}
	}
	return nil
}

func (e *Engine) checkNotDuplicate(op string, f formula.Formula) error {
	if _, ok := e.lookup(f); ok {
		return e.errf(op, "formula %s is already a known fact", f.Serialize())
	}
	return nil
}

// record runs the standard precondition checks (free-term liveness,
// duplicate rejection), then appends fact to the current frame and emits
// its transcript line.
func (e *Engine) record(op string, f formula.Formula, label string, refs...*Fact) (*Fact, error) {
	if len(e.frames) == 0 {
		return nil, e.errf(op, "no context is open")
	}
	if err := e.checkLive(op, f); err != nil {
		return nil, err
	}
	if err := e.checkNotDuplicate(op, f); err != nil {
		return nil, err
	}
	fact := e.newFact(f, label, refs)
	e.top().record(fact)
	e.emit(fact, len(e.frames)-1)
	e.log.Debug("recorded fact",
		zap.Int("serial", fact.Serial),
		zap.String("justification", fact.Justification),
		zap.Ints("references", fact.References),
		zap.Int("depth", len(e.frames)-1),
	)
	return fact, nil
}

// OpenContext creates a new frame with len(hints) fresh free terms, one per
// hint (an empty hint string lets the allocator pick a name later). No fact
// is recorded.
func (e *Engine) OpenContext(hints...string) []term.FreeTerm {
	terms := make([]term.FreeTerm, len(hints))
	fr := newFrame(e.nextFrame, nil)
	e.nextFrame++
	for i, h := range hints {
		ft := term.NewFree(h)
		terms[i] = ft
		e.live[ft] = fr.id
	}
	fr.freeTerms = terms
	e.frames = append(e.frames, fr)
	e.log.Debug("opened context", zap.Int("frame", fr.id), zap.Int("free_terms", len(terms)))
	return terms
}
