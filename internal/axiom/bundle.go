// Package axiom loads a declarative axiom bundle — predicate declarations
// plus their axiom formulas, written in the internal/synformula grammar —
// into the []formula.Formula an Engine's outermost frame is built from.
// The concrete Tarski axiom list is data, not code: this package only
// knows how to turn a bundle file into formulas, not what any particular
// bundle should contain.
package axiom

import (
	"fmt"
	"os"

	"github.com/google/mangle/ast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"tarski/internal/formula"
	"tarski/internal/synformula"
)

// PredicateSpec declares one predicate a bundle's axioms may apply.
type PredicateSpec struct {
	Name   string `yaml:"name"`
	Arity  int    `yaml:"arity"`
	Format string `yaml:"format"`
}

// Bundle is the on-disk shape of an axiom file: the predicates its axioms
// use, and the axioms themselves as synformula source text.
type Bundle struct {
	Predicates []PredicateSpec `yaml:"predicates"`
	Axioms     []string        `yaml:"axioms"`
}

// Load reads and parses the bundle at path, returning the axiom formulas in
// file order together with the environment used to resolve them (so a
// caller can parse further ad hoc formulas, e.g. theorem statements,
// against the same predicate declarations).
func Load(path string, log *zap.Logger) ([]formula.Formula, *synformula.Env, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("axiom: read %s: %w", path, err)
	}

	var bundle Bundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, nil, fmt.Errorf("axiom: parse %s: %w", path, err)
	}

	env := synformula.NewEnv()
	for _, spec := range bundle.Predicates {
		p := formula.NewPredicate(spec.Name, spec.Arity, spec.Format)
		env.Declare(p)
		log.Debug("declared predicate", zap.String("predicate", fmt.Sprintf("%v", declarationAtom(p))))
	}

	axioms := make([]formula.Formula, len(bundle.Axioms))
	for i, src := range bundle.Axioms {
		f, err := synformula.Parse(src, env)
		if err != nil {
			return nil, nil, fmt.Errorf("axiom: bundle %s, axiom %d (%q): %w", path, i, src, err)
		}
		axioms[i] = f
	}
	log.Info("loaded axiom bundle", zap.String("path", path), zap.Int("axioms", len(axioms)))

	return axioms, env, nil
}

// declarationAtom renders a predicate's (name, arity) shape as a mangle
// atom with placeholder argument names, purely for log readability —
// ast.PredicateSym already backs formula.Predicate itself, so this is the
// one place a bundle's declarations are turned into mangle's own surface
// syntax for a human reading the log.
func declarationAtom(p formula.Predicate) ast.Atom {
	args := make([]ast.BaseTerm, p.Arity())
	for i := range args {
		args[i] = ast.Variable{Symbol: fmt.Sprintf("X%d", i+1)}
	}
	return ast.NewAtom(p.Name(), args...)
}
