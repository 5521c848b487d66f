package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarski/internal/term"
)

func TestFreeAllocator_GeneratesInOrder(t *testing.T) {
	a := NewFreeAllocator()
	x := term.NewFree("")
	y := term.NewFree("")
	assert.Equal(t, "a", a.NameOf(x))
	assert.Equal(t, "b", a.NameOf(y))
	// Repeated lookups are stable.
	assert.Equal(t, "a", a.NameOf(x))
}

func TestFreeAllocator_HintPreferredWhenFree(t *testing.T) {
	a := NewFreeAllocator()
	x := term.NewFree("p")
	assert.Equal(t, "p", a.NameOf(x))
}

func TestFreeAllocator_HintCollisionFallsBackToGenerator(t *testing.T) {
	a := NewFreeAllocator()
	first := term.NewFree("a") // claims the generator's first name via hint
	second := term.NewFree("a")
	assert.Equal(t, "a", a.NameOf(first))
	// second wants "a" too but it's taken; falls back to the generator,
	// which must skip "a" since it is already in use.
	assert.Equal(t, "b", a.NameOf(second))
}

func TestFreeAllocator_DiscardRecyclesGeneratedNames(t *testing.T) {
	a := NewFreeAllocator()
	x := term.NewFree("")
	y := term.NewFree("")
	require.Equal(t, "a", a.NameOf(x))
	require.Equal(t, "b", a.NameOf(y))

	a.Discard(x) // "a" returns to the pool

	z := term.NewFree("")
	assert.Equal(t, "a", a.NameOf(z), "discarded generator name should be recycled before minting a new one")
}

func TestFreeAllocator_HintNamesAreNotRecycled(t *testing.T) {
	a := NewFreeAllocator()
	x := term.NewFree("p")
	require.Equal(t, "p", a.NameOf(x))
	a.Discard(x)

	y := term.NewFree("")
	assert.Equal(t, "a", a.NameOf(y), "hint-sourced names must not enter the generator's recycle pool")
}

func TestFreeAllocator_DiscardedTermPanicsOnDisplay(t *testing.T) {
	a := NewFreeAllocator()
	x := term.NewFree("")
	a.NameOf(x)
	a.Discard(x)
	assert.Panics(t, func() { a.NameOf(x) })
}

func TestFreeAllocator_DoubleDiscardPanics(t *testing.T) {
	a := NewFreeAllocator()
	x := term.NewFree("")
	a.NameOf(x)
	a.Discard(x)
	assert.Panics(t, func() { a.Discard(x) })
}
