package app

import (
	"os"
	"path/filepath"
	"testing"

	"go-survivor/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLibraryDefaults(t *testing.T) {
	lib, err := LoadLibrary("")
	require.NoError(t, err)
	assert.Equal(t, defs.DefaultEnemyLibrary(), lib)
}

func TestLoadLibraryOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tank": {"health": 260}}`), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, 260, lib[defs.EnemyTank].Health)
	assert.Equal(t, 40, lib[defs.EnemyMelee].Health)
}

func TestLoadLibraryMissingFile(t *testing.T) {
	_, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to load enemy definitions")
}
