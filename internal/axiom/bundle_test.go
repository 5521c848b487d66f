package axiom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarski/internal/formula"
)

func writeBundle(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoad_ParsesDeclaredPredicatesAndAxioms(t *testing.T) {
	path := writeBundle(t, `
predicates:
  - name: Congruent
    arity: 4
    format: "Congruent(%[1]s,%[2]s,%[3]s,%[4]s)"
axioms:
  - "forall x, y. Congruent(x,y,y,x)"
  - "forall x,y,r,s,t,u. (Congruent(x,y,r,s) & Congruent(x,y,t,u)) -> Congruent(r,s,t,u)"
`)

	axioms, env, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, axioms, 2)

	univ, ok := axioms[0].(*formula.Universal)
	require.True(t, ok)
	assert.Equal(t, 2, len(univ.Binders()))
	assert.Contains(t, env.Predicates, "Congruent")
}

func TestLoad_RejectsUnknownPredicate(t *testing.T) {
	path := writeBundle(t, `
predicates: []
axioms:
  - "forall x. Missing(x)"
`)
	_, _, err := Load(path, nil)
	require.Error(t, err)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

// TestLoad_ShippedBundleParses loads the default bundle cmd/tarski runs with
// when no -bundle flag is given, so a bug in that file (rather than in an
// inline test literal) is caught here too.
func TestLoad_ShippedBundleParses(t *testing.T) {
	axioms, _, err := Load(filepath.Join("..", "..", "axioms", "tarski.yaml"), nil)
	require.NoError(t, err)
	require.Len(t, axioms, 10)

	refl, ok := axioms[0].(*formula.Universal)
	require.True(t, ok, "axiom 0 (reflexivity) must be a universal")
	assert.Equal(t, 1, len(refl.Binders()), "reflexivity must bind exactly the one variable it actually uses")
}
