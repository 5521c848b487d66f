package formula

import "github.com/google/mangle/ast"

// Predicate is a process-wide constant describing a relation: its name, its
// arity, and a positional display format. The (name, arity) pair is
// literally google/mangle's own predicate descriptor, ast.PredicateSym —
// reused here rather than reinvented, since it is exactly the type mangle's
// own Datalog engine uses to key predicates. See DESIGN.md for why the rest
// of mangle is not wired into this kernel.
type Predicate struct {
	sym ast.PredicateSym
	format string
}

// NewPredicate declares a predicate descriptor. format is a fmt-style string
// with explicit positional verbs (e.g. "Congruent(%[1]s,%[2]s,%[3]s,%[4]s)"),
// so argument order in the rendered display is independent of argument order
// in code and no bespoke template syntax is needed.
func NewPredicate(name string, arity int, format string) Predicate {
	return Predicate{sym: ast.PredicateSym{Symbol: name, Arity: arity}, format: format}
}

// Name returns the predicate's symbol.
func (p Predicate) Name() string { return p.sym.Symbol }

// Arity returns the predicate's declared arity.
func (p Predicate) Arity() int { return p.sym.Arity }

// Format returns the positional display format string.
func (p Predicate) Format() string { return p.format }
