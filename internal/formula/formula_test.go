package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarski/internal/naming"
	"tarski/internal/term"
)

func mustApp(t *testing.T, p Predicate, args ...term.Term) Formula {
	t.Helper()
	f, err := NewPredicateApplication(p, args...)
	require.NoError(t, err)
	return f
}

// substitute must compute the exact expected free-variable equation:
// free(substitute(F,σ)) = (free(F) \ dom(σ)) ∪ ⋃ vars(σ(x)).
func TestSubstitute_FreeVarsEquation(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")
	z := term.NewFree("z")
	f := mustApp(t, p, x, y)

	out, err := Substitute(f, map[term.FreeTerm]term.Term{x: z})
	require.NoError(t, err)

	free := out.Free()
	assert.True(t, free.Contains(z))
	assert.True(t, free.Contains(y))
	assert.False(t, free.Contains(x))
	assert.Equal(t, 2, free.Len())
}

// serialize must be invariant to which binder a quantifier mints
// internally — two independently built α-equivalent quantifiers serialize equal.
func TestSerialize_AlphaInvariant(t *testing.T) {
	p := NewPredicate("P", 1, "P(%[1]s)")

	x := term.NewFree("x")
	f1 := NewUniversal([]term.FreeTerm{x}, mustApp(t, p, x))

	y := term.NewFree("y")
	f2 := NewUniversal([]term.FreeTerm{y}, mustApp(t, p, y))

	assert.Equal(t, f1.Serialize(), f2.Serialize())
}

// specialise(Universal, 0, t) must be α-equal to F[x↦t] when t isn't bound in F.
func TestSpecialise_MatchesSubstitution(t *testing.T) {
	p := NewPredicate("P", 1, "P(%[1]s)")
	x := term.NewFree("x")
	body := mustApp(t, p, x)
	univ := NewUniversal([]term.FreeTerm{x}, body).(*Universal)

	tt := term.NewFree("t")
	specialised, err := Specialise(univ, 0, tt)
	require.NoError(t, err)

	direct, err := Substitute(body, map[term.FreeTerm]term.Term{x: tt})
	require.NoError(t, err)

	assert.True(t, Equal(specialised, direct))
}

// generalizing over free(F) and then specialising each binder in order
// must return a formula α-equal to F.
func TestGeneralizeThenSpecialise_RoundTrips(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")
	f := mustApp(t, p, x, y)

	univ := NewUniversal([]term.FreeTerm{x, y}, f).(*Universal)

	s1, err := Specialise(univ, 0, x)
	require.NoError(t, err)
	u2, ok := s1.(*Universal)
	require.True(t, ok)

	s2, err := Specialise(u2, 0, y)
	require.NoError(t, err)

	assert.True(t, Equal(s2, f))
}

// serialize must be total and deterministic; equal formulas hash equal.
func TestSerializeAndHash_Deterministic(t *testing.T) {
	p := NewPredicate("P", 1, "P(%[1]s)")
	x := term.NewFree("x")
	f := mustApp(t, p, x)

	assert.Equal(t, f.Serialize(), f.Serialize())
	assert.Equal(t, Hash(f), Hash(f))
}

// ∀x.P(x) and ∀y.P(y) over the same predicate must agree under Equal
// and Hash.
func TestAlphaEquivalence_UniversalsOverSamePredicate(t *testing.T) {
	p := NewPredicate("P", 1, "P(%[1]s)")

	x := term.NewFree("x")
	f1 := NewUniversal([]term.FreeTerm{x}, mustApp(t, p, x))

	y := term.NewFree("y")
	f2 := NewUniversal([]term.FreeTerm{y}, mustApp(t, p, y))

	assert.True(t, Equal(f1, f2))
	assert.Equal(t, Hash(f1), Hash(f2))
}

// substituting {x ↦ y} into ∀y. P(x,y) must be rejected — y is bound
// within the quantifier's scope.
func TestSubstitute_RejectsCapture(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")

	body := mustApp(t, p, x, y)
	univ := NewUniversal([]term.FreeTerm{y}, body)

	_, err := Substitute(univ, map[term.FreeTerm]term.Term{x: y})
	require.Error(t, err)
}

func TestPretty_RendersPredicateApplication(t *testing.T) {
	p := NewPredicate("Congruent", 2, "Congruent(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")
	f := mustApp(t, p, x, y)

	alloc := naming.NewFreeAllocator()
	assert.Equal(t, "Congruent(x,y)", Pretty(f, alloc))
}
