package musicpersona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundleYAML = `
features:
  - energy_mean
  - danceability_mean
intercept: 0
coefficients:
  energy_mean: 1
  danceability_mean: -1
scaler:
  means:
    energy_mean: 0.5
    danceability_mean: 0.5
  stds:
    energy_mean: 0.25
    danceability_mean: 0.25
`

func writeBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBundle(t *testing.T) {
	b, err := LoadBundle(writeBundle(t, bundleYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"energy_mean", "danceability_mean"}, b.Features)
}

func TestLoadBundle_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "features: []\n"},
		{"missing coefficient", "features: [energy_mean]\nscaler:\n  means: {energy_mean: 0}\n  stds: {energy_mean: 1}\n"},
		{"zero std", "features: [energy_mean]\ncoefficients: {energy_mean: 1}\nscaler:\n  means: {energy_mean: 0}\n  stds: {energy_mean: 0}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBundle(writeBundle(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestBundle_ExtraversionProbability(t *testing.T) {
	b, err := LoadBundle(writeBundle(t, bundleYAML))
	require.NoError(t, err)

	// energy scales to 1, danceability to 0; z = 1.
	p := b.ExtraversionProbability(map[string]float64{
		"energy_mean":       0.75,
		"danceability_mean": 0.5,
	})
	assert.InDelta(t, 0.7311, p, 1e-4)

	// At the training means the model predicts the intercept.
	p = b.ExtraversionProbability(map[string]float64{
		"energy_mean":       0.5,
		"danceability_mean": 0.5,
	})
	assert.InDelta(t, 0.5, p, 1e-9)
}

func TestLinearExplainer(t *testing.T) {
	b, err := LoadBundle(writeBundle(t, bundleYAML))
	require.NoError(t, err)
	e := LinearExplainer{Bundle: b}

	values := map[string]float64{"energy_mean": 0.75, "danceability_mean": 0.25}
	local := e.LocalContributions(values)
	assert.InDelta(t, 1.0, local["energy_mean"], 1e-9)
	assert.InDelta(t, 1.0, local["danceability_mean"], 1e-9) // -1 * -1

	global := e.GlobalCoefficients()
	assert.Equal(t, b.Coefficients, global)

	// The returned map is a copy.
	global["energy_mean"] = 42
	assert.InDelta(t, 1.0, b.Coefficients["energy_mean"], 1e-9)
}
