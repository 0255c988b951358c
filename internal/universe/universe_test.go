package universe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	syms := Default()
	require.Len(t, syms, 207)
	assert.Equal(t, "SUCE", syms[0])
	assert.Equal(t, "DEIN", syms[len(syms)-1])
	assert.Equal(t, syms, Normalize(syms), "default universe must be normalized")

	// Callers get their own copy.
	syms[0] = "CHANGED"
	assert.Equal(t, "SUCE", Default()[0])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: banks
symbols:
  - comi
  - " CIEB "
  - ADIB
  - COMI
  - ""
`), 0o644))

	syms, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"COMI", "CIEB", "ADIB"}, syms)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\nsymbols: []\n"), 0o644))
	_, err = LoadFile(empty)
	assert.ErrorIs(t, err, ErrEmpty)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("symbols: [COMI\n"), 0o644))
	_, err = LoadFile(broken)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	syms, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), syms)

	path := filepath.Join(t.TempDir(), "u.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbols: [SWDY]\n"), 0o644))
	syms, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SWDY"}, syms)
}
