package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarski/internal/term"
)

func TestSpecialise_RejectsSiblingCapture(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")
	univ := NewUniversal([]term.FreeTerm{x, y}, mustApp(t, p, x, y)).(*Universal)

	_, err := Specialise(univ, 0, y)
	require.Error(t, err, "y is still bound by the sibling binder")
}

func TestSpecialise_LeavesRemainingBindersUniversal(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")
	univ := NewUniversal([]term.FreeTerm{x, y}, mustApp(t, p, x, y)).(*Universal)

	z := term.NewFree("z")
	out, err := Specialise(univ, 0, z)
	require.NoError(t, err)

	still, ok := out.(*Universal)
	require.True(t, ok, "one binder remains, so the result is still universally quantified")
	assert.Equal(t, 1, len(still.Binders()))
	assert.True(t, still.Free().Contains(z))
}

func TestOpen_InstantiatesAllBindersAtOnce(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	y := term.NewFree("y")
	exists := NewExistential([]term.FreeTerm{x, y}, mustApp(t, p, x, y)).(*Existential)

	a := term.NewFree("a")
	b := term.NewFree("b")
	out, err := Open(exists, []term.FreeTerm{a, b})
	require.NoError(t, err)

	assert.True(t, out.Free().Contains(a))
	assert.True(t, out.Free().Contains(b))
	assert.Equal(t, 2, out.Free().Len())
}

func TestOpen_RejectsCaptureByNestedBinder(t *testing.T) {
	p := NewPredicate("P", 2, "P(%[1]s,%[2]s)")
	x := term.NewFree("x")
	inner := term.NewFree("y")
	nested := NewUniversal([]term.FreeTerm{inner}, mustApp(t, p, x, inner))
	exists := NewExistential([]term.FreeTerm{x}, nested).(*Existential)

	fresh := term.NewFree("fresh")
	_, err := Open(exists, []term.FreeTerm{fresh})
	require.NoError(t, err, "fresh is unrelated to the nested binder, so no capture")

	// Now instantiate with a free term that actually is the nested
	// quantifier's own origin — this can only happen if the caller passes
	// back a term that was itself bound somewhere, which Open must reject.
	reused := inner
	_, err = Open(exists, []term.FreeTerm{reused})
	require.Error(t, err)
}

func TestSpecialise_OutOfRangeIndex(t *testing.T) {
	p := NewPredicate("P", 1, "P(%[1]s)")
	x := term.NewFree("x")
	univ := NewUniversal([]term.FreeTerm{x}, mustApp(t, p, x)).(*Universal)

	_, err := Specialise(univ, 5, term.NewFree("z"))
	require.Error(t, err)
}
