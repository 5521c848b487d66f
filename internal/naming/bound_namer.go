package naming

import "tarski/internal/term"

// NameBoundTerms assigns display names to a quantifier's binder list for a
// single pretty-print call. Names are drawn from the fixed bound-term
// alphabet, skipping any name already present in inScope. Unlike free-term names, bound-term names
// are never persisted or recycled — they only need to be unique within the
// formula currently being printed.
func NameBoundTerms(binders []term.BoundTerm, inScope map[string]bool) map[term.BoundTerm]string {
	gen := boundAlphabet()
	taken := make(map[string]bool, len(inScope))
	for k := range inScope {
		taken[k] = true
	}
	names := make(map[term.BoundTerm]string, len(binders))
	for _, b := range binders {
		var name string
		for {
			candidate := gen.Next()
			if !taken[candidate] {
				name = candidate
				break
			}
		}
		taken[name] = true
		names[b] = name
	}
	return names
}
