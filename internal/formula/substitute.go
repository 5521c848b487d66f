package formula

import "tarski/internal/term"

// Substitute replaces each free term in sigma's domain with its image
// throughout f. Only FreeTerm keys are honored — bound terms are never a
// valid substitution domain from the outside, since they are only ever
// reachable through the quantifier that minted them.
//
// The substitution is rejected if any image term is itself bound somewhere
// within f's scope, since applying it would let a quantifier silently
// capture a variable that was meant to stay free.
func Substitute(f Formula, sigma map[term.FreeTerm]term.Term) (Formula, error) {
	forbidden := f.boundOrigins()
	raw := make(map[term.Term]term.Term, len(sigma))
	for k, v := range sigma {
		if !f.Free().Contains(k) {
			continue
		}
		if ft, ok := v.(term.FreeTerm); ok && forbidden.Contains(ft.ID()) {
			return nil, errf("substitute", "%s would be captured by a quantifier in scope", ft)
		}
		raw[k] = v
	}
	return f.substituteRaw(raw), nil
}
