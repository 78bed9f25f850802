package vlm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciricc/go-vlm-bench/internal/dataset"
)

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), m.Model.ID)
	assert.Equal(t, "http://localhost", m.Model.BaseURL)
	assert.Equal(t, 11434, m.Model.Port)
	assert.Equal(t, defaultSystemPrompt, m.Model.SystemPrompt)
	assert.Equal(t, dataset.DefaultImageSize, m.Preprocess.ImageSize)
}

func TestLoadManifestFromYAML(t *testing.T) {
	dir := t.TempDir()
	manifest := `
model:
  id: fastvlm-7b
  port: 11500
preprocess:
  image_size: 448
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFileName), []byte(manifest), 0644))

	m, err := LoadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, "fastvlm-7b", m.Model.ID)
	assert.Equal(t, 11500, m.Model.Port)
	assert.Equal(t, 448, m.Preprocess.ImageSize)

	// unset fields still get defaults
	assert.Equal(t, "http://localhost", m.Model.BaseURL)
	assert.Equal(t, defaultSystemPrompt, m.Model.SystemPrompt)
}

func TestLoadManifestMissingPath(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "no-such-checkpoint"))
	require.Error(t, err)
}

func TestLoadManifestInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFileName), []byte("model: [unbalanced"), 0644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse model manifest")
}
