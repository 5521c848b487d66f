package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tarski", cfg.Name)
	assert.Equal(t, "axioms/tarski.yaml", cfg.Axiom.BundlePath)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Logging.DebugMode = true
	cfg.Logging.Level = "debug"
	cfg.Axiom.BundlePath = "axioms/custom.yaml"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.Logging.DebugMode)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.Equal(t, "axioms/custom.yaml", loaded.Axiom.BundlePath)
}

func TestLoad_EnvOverridesTakePrecedence(t *testing.T) {
	t.Setenv("TARSKI_LOG_LEVEL", "warn")
	t.Setenv("TARSKI_AXIOM_BUNDLE", "axioms/from-env.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "axioms/from-env.yaml", cfg.Axiom.BundlePath)
}

func TestValidate_RejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsEmptyBundlePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Axiom.BundlePath = ""
	assert.Error(t, cfg.Validate())
}
