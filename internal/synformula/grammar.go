// Package synformula parses first-order formulas from a small textual
// grammar, an alternative to building them through internal/formula's Go
// constructors by hand. The grammar supports the two quantifiers, the
// three binary connectives, negation, and predicate application:
//
//	forall x, y. Congruent(x,y,y,x)
//	exists x. Between(a,x,b) & -Equal(a,x)
//	Congruent(a,b,c,d) -> Congruent(c,d,a,b)
package synformula

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Forall", Pattern: `forall\b`},
	{Name: "Exists", Pattern: `exists\b`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "And", Pattern: `&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Not", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Expr is a formula production: either a quantifier binding the rest of
// the expression, or an implication (the next precedence level down).
type Expr struct {
	Quantifier  *Quantifier  `  @@`
	Implication *Implication `| @@`
}

// Quantifier is ("forall"|"exists") Ident ("," Ident)* "." Expr.
type Quantifier struct {
	Kind string   `@("forall" | "exists")`
	Vars []string `@Ident ("," @Ident)*`
	Body *Expr    `"." @@`
}

// Implication is right-associative: Disjunction ("->" Implication)?.
type Implication struct {
	Left  *Disjunction `@@`
	Right *Implication `("->" @@)?`
}

// Disjunction is left-associative: Conjunction ("|" Conjunction)*.
type Disjunction struct {
	Left  *Conjunction   `@@`
	Right []*Conjunction `("|" @@)*`
}

// Conjunction is left-associative: Negation ("&" Negation)*.
type Conjunction struct {
	Left  *Negated   `@@`
	Right []*Negated `("&" @@)*`
}

// Negated is an optional leading "-" applied to an Atom.
type Negated struct {
	Not  bool  `@"-"?`
	Atom *Atom `@@`
}

// Atom is either a parenthesised sub-expression or a predicate application.
type Atom struct {
	Paren *Expr        `  "(" @@ ")"`
	App   *Application `| @@`
}

// Application is Name(arg, arg, ...) with zero or more bare identifier
// arguments.
type Application struct {
	Name string   `@Ident`
	Args []string `"(" (@Ident ("," @Ident)*)? ")"`
}

var parser = participle.MustBuild[Expr](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseExpr parses src into an Expr AST without resolving predicates or
// variables — see Convert for that step.
func ParseExpr(src string) (*Expr, error) {
	return parser.ParseString("", src)
}
