package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"micro sign folds to ascii u", "µs", "us"},
		{"greek mu folds to ascii u", "μs", "us"},
		{"angstrom ring upper expands", "Å", "Angstrom"},
		{"angstrom ring lower expands", "å", "angstrom"},
		{"nfc-only angstrom sign expands", "Å", "Angstrom"},
		{"plain ascii untouched", "km/s", "km/s"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeInput(tt.input))
		})
	}
}

func TestParse_UnicodeMicroPrefix(t *testing.T) {
	result, err := Parse("µs")
	assert.NoError(t, err)
	assert.InDelta(t, 1e-6, result.Scale, 1e-18)
	assert.Equal(t, float64(1), result.Vector[QTime])
}

func TestParse_UnicodeAngstrom(t *testing.T) {
	result, err := Parse("Å")
	assert.NoError(t, err)
	assert.InDelta(t, 1e-10, result.Scale, 1e-22)
	assert.Equal(t, float64(1), result.Vector[QLength])
}
