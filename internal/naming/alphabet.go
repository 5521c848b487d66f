// Package naming allocates and recycles human-readable display names for
// free and bound terms.
package naming

import "strconv"

// alphabet produces an endless sequence of names: the letters of base in
// order, then base[0]+"2", base[0]+"3", and so on. All single letters are
// exhausted before the first one is reused with a numeric suffix.
type alphabet struct {
	letters []string
	next int // index into letters; equals len(letters) once exhausted
	suffix int // next numeric suffix once letters are exhausted
}

func newAlphabet(letters []string) *alphabet {
	return &alphabet{letters: letters, suffix: 2}
}

// Next returns the next name in the sequence. It never terminates.
func (a *alphabet) Next() string {
	if a.next < len(a.letters) {
		name := a.letters[a.next]
		a.next++
		return name
	}
	name := a.letters[0] + strconv.Itoa(a.suffix)
	a.suffix++
	return name
}

// boundAlphabet returns a fresh generator for bound-term display names.
func boundAlphabet() *alphabet {
	return newAlphabet([]string{"x", "y", "r", "s", "t", "u", "v", "w", "z"})
}

// freeAlphabet returns a fresh generator for free-term display names.
func freeAlphabet() *alphabet {
	return newAlphabet([]string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q",
	})
}
