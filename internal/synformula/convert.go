package synformula

import (
	"fmt"

	"tarski/internal/formula"
	"tarski/internal/term"
)

// Error is a structured resolution failure: a parsed Expr referenced a
// predicate or variable the caller's Env doesn't know about.
type Error struct {
	Op     string
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("synformula: %s: %s", e.Op, e.Detail)
}

func errf(op, format string, args ...interface{}) *Error {
	return &Error{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// Env resolves the names a parsed Expr mentions: predicate descriptors by
// name, and free terms already in scope (e.g. the open context's variables)
// by hint.
type Env struct {
	Predicates map[string]formula.Predicate
	Vars       map[string]term.FreeTerm
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{Predicates: make(map[string]formula.Predicate), Vars: make(map[string]term.FreeTerm)}
}

// Declare registers a predicate by name so Parse can resolve applications
// of it.
func (env *Env) Declare(p formula.Predicate) {
	env.Predicates[p.Name()] = p
}

// Bind registers a free term under a name Parse can reference as a bare
// identifier — typically the variables an open proof context introduced.
func (env *Env) Bind(name string, t term.FreeTerm) {
	env.Vars[name] = t
}

// Parse parses src and resolves it against env in one step.
func Parse(src string, env *Env) (formula.Formula, error) {
	expr, err := ParseExpr(src)
	if err != nil {
		return nil, errf("parse", "%v", err)
	}
	return Convert(expr, env)
}

// Convert resolves an already-parsed Expr against env.
func Convert(e *Expr, env *Env) (formula.Formula, error) {
	return convertExpr(e, env, env.Vars)
}

func convertExpr(e *Expr, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	if e.Quantifier != nil {
		return convertQuantifier(e.Quantifier, env, scope)
	}
	return convertImplication(e.Implication, env, scope)
}

func convertQuantifier(q *Quantifier, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	inner := make(map[string]term.FreeTerm, len(scope)+len(q.Vars))
	for k, v := range scope {
		inner[k] = v
	}
	vars := make([]term.FreeTerm, len(q.Vars))
	for i, name := range q.Vars {
		ft := term.NewFree(name)
		vars[i] = ft
		inner[name] = ft
	}
	body, err := convertExpr(q.Body, env, inner)
	if err != nil {
		return nil, err
	}
	switch q.Kind {
	case "forall":
		return formula.NewUniversal(vars, body), nil
	case "exists":
		return formula.NewExistential(vars, body), nil
	default:
		return nil, errf("quantifier", "unknown quantifier kind %q", q.Kind)
	}
}

func convertImplication(i *Implication, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	left, err := convertDisjunction(i.Left, env, scope)
	if err != nil {
		return nil, err
	}
	if i.Right == nil {
		return left, nil
	}
	right, err := convertImplication(i.Right, env, scope)
	if err != nil {
		return nil, err
	}
	return formula.Implies(left, right), nil
}

func convertDisjunction(d *Disjunction, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	acc, err := convertConjunction(d.Left, env, scope)
	if err != nil {
		return nil, err
	}
	for _, c := range d.Right {
		next, err := convertConjunction(c, env, scope)
		if err != nil {
			return nil, err
		}
		acc = formula.Disjunction(acc, next)
	}
	return acc, nil
}

func convertConjunction(c *Conjunction, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	acc, err := convertNegated(c.Left, env, scope)
	if err != nil {
		return nil, err
	}
	for _, n := range c.Right {
		next, err := convertNegated(n, env, scope)
		if err != nil {
			return nil, err
		}
		acc = formula.Conjunction(acc, next)
	}
	return acc, nil
}

func convertNegated(n *Negated, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	atom, err := convertAtom(n.Atom, env, scope)
	if err != nil {
		return nil, err
	}
	if n.Not {
		return formula.Not(atom), nil
	}
	return atom, nil
}

func convertAtom(a *Atom, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	if a.Paren != nil {
		return convertExpr(a.Paren, env, scope)
	}
	return convertApplication(a.App, env, scope)
}

func convertApplication(app *Application, env *Env, scope map[string]term.FreeTerm) (formula.Formula, error) {
	pred, ok := env.Predicates[app.Name]
	if !ok {
		return nil, errf("application", "undeclared predicate %q", app.Name)
	}
	args := make([]term.Term, len(app.Args))
	for i, name := range app.Args {
		t, ok := scope[name]
		if !ok {
			return nil, errf("application", "undeclared variable %q in %s(...)", name, app.Name)
		}
		args[i] = t
	}
	f, err := formula.NewPredicateApplication(pred, args...)
	if err != nil {
		return nil, errf("application", "%v", err)
	}
	return f, nil
}
