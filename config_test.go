package poissondisk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes data to a temp yaml file & returns it's path
func writeConfig(t *testing.T, data string) string {
	t.Helper()
	fpath := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte(data), 0644))
	return fpath
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint32(30), cfg.Attempts)
	assert.Equal(t, HalfCircle, cfg.Annulus)
	assert.Equal(t, int64(0), cfg.Seed)

	// no area yet
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidParameter)
}

func TestLoadConfig(t *testing.T) {
	fpath := writeConfig(t, `
width: 64
height: 32.5
radius: 1.5
seed: 77
annulus: full
max_points: 500
`)

	cfg, err := LoadConfig(fpath)
	require.NoError(t, err)

	assert.Equal(t, float32(64), cfg.Width)
	assert.Equal(t, float32(32.5), cfg.Height)
	assert.Equal(t, float32(1.5), cfg.Radius)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, FullCircle, cfg.Annulus)
	assert.Equal(t, 500, cfg.MaxPoints)
	assert.Equal(t, uint32(30), cfg.Attempts, "default should survive")
}

func TestLoadConfigZeroAttempts(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "width: 10\nheight: 10\nradius: 2\nattempts: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), cfg.Attempts)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "width: [not, a, number"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "width: 10\nheight: 10\nradius: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = LoadConfig(writeConfig(t, "width: 10\nheight: 10\nradius: 1\nannulus: square\n"))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Width: 10, Height: 10, Radius: 2}
	assert.NoError(t, cfg.Validate(), "empty annulus means the default")

	cfg.Annulus = FullCircle
	assert.NoError(t, cfg.Validate())

	cfg.Height = -1
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "height")
}
