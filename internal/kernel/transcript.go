package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"tarski/internal/formula"
)

// emit writes one transcript line for fact, following format exactly:
//
//	<serial> <indent> <pretty(formula)> <justification-label> (refs...)
//
// depth is the fact's frame's nesting level (0 for the axiom frame), and
// contributes two spaces of indent per level.
func (e *Engine) emit(fact *Fact, depth int) {
	if e.transcript == nil {
		return
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(fact.Serial))
	b.WriteString(" ")
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(formula.Pretty(fact.Formula, e.alloc))
	b.WriteString(" ")
	b.WriteString(fact.Justification)
	if len(fact.References) > 0 {
		parts := make([]string, len(fact.References))
		for i, r := range fact.References {
			parts[i] = strconv.Itoa(r)
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	fmt.Fprintln(e.transcript, b.String())
}
