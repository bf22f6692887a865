package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFunc  FuncTag
		wantScale float64
		wantIdx   []Quantity
		wantVal   []float64
		wantErr   error
	}{
		{
			name:      "bare metre",
			input:     "m",
			wantFunc:  FuncNone,
			wantScale: 1,
			wantIdx:   []Quantity{QLength},
			wantVal:   []float64{1},
		},
		{
			name:      "kilometre per second",
			input:     "km/s",
			wantFunc:  FuncNone,
			wantScale: 1000,
			wantIdx:   []Quantity{QLength, QTime},
			wantVal:   []float64{1, -1},
		},
		{
			name:      "compound exponent and parenthesised denominator",
			input:     "10**-12 erg/(cm**2 s Angstrom)",
			wantFunc:  FuncNone,
			wantScale: 1e-5,
			wantIdx:   []Quantity{QMass, QLength, QTime},
			wantVal:   []float64{1, -1, -3},
		},
		{
			name:      "log of hertz",
			input:     "log(Hz)",
			wantFunc:  FuncLog,
			wantScale: 1,
			wantIdx:   []Quantity{QTime},
			wantVal:   []float64{-1},
		},
		{
			name:      "jansky per beam",
			input:     "Jy/beam",
			wantFunc:  FuncNone,
			wantScale: 1e-26,
			wantIdx:   []Quantity{QMass, QTime, QBeam},
			wantVal:   []float64{1, -2, -1},
		},
		{
			name:    "unmatched open paren",
			input:   "(",
			wantErr: ErrUnbalParen,
		},
		{
			name:    "dangling exponent marker",
			input:   "m**",
			wantErr: ErrDanglingBinop,
		},
		{
			name:    "consecutive division",
			input:   "m//s",
			wantErr: ErrConsecBinops,
		},
		{
			name:    "function tag inside parens",
			input:   "exp(log(Hz))",
			wantErr: ErrFunctionContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)

			if tt.wantErr != nil {
				if !assert.Error(t, err) {
					return
				}
				assert.True(t, errors.Is(err, tt.wantErr))

				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr))
				assert.Equal(t, float64(0), result.Scale)
				assert.Equal(t, BaseVector{}, result.Vector)

				return
			}

			if !assert.NoError(t, err) {
				return
			}

			assert.Equal(t, tt.wantFunc, result.Func)
			assert.InDelta(t, tt.wantScale, result.Scale, tt.wantScale*1e-9)

			want := BaseVector{}
			for i, q := range tt.wantIdx {
				want[q] = tt.wantVal[i]
			}
			assert.Equal(t, want, result.Vector)
		})
	}
}

func TestParse_DivisionLaw(t *testing.T) {
	a, err := Parse("erg")
	assert.NoError(t, err)

	b, err := Parse("s")
	assert.NoError(t, err)

	div, err := Parse("erg/s")
	assert.NoError(t, err)

	for i := range a.Vector {
		assert.Equal(t, a.Vector[i]-b.Vector[i], div.Vector[i])
	}
	assert.InDelta(t, a.Scale/b.Scale, div.Scale, 1e-12)
}

func TestParse_ExponentLaw(t *testing.T) {
	base, err := Parse("cm")
	assert.NoError(t, err)

	squared, err := Parse("cm**2")
	assert.NoError(t, err)

	for i := range base.Vector {
		assert.Equal(t, 2*base.Vector[i], squared.Vector[i])
	}
	assert.InDelta(t, math.Pow(base.Scale, 2), squared.Scale, 1e-12)
}

func TestParse_Parenthesisation(t *testing.T) {
	bare, err := Parse("erg/cm**2")
	assert.NoError(t, err)

	parenthesised, err := Parse("(erg/cm**2)")
	assert.NoError(t, err)

	assert.Equal(t, bare, parenthesised)
}

func TestParse_Brackets(t *testing.T) {
	bare, err := Parse("erg/s")
	assert.NoError(t, err)

	bracketed, err := Parse("[erg/s]")
	assert.NoError(t, err)

	assert.Equal(t, bare, bracketed)
}

func TestParse_PrefixMultiplier(t *testing.T) {
	base, err := Parse("m")
	assert.NoError(t, err)

	prefixed, err := Parse("km")
	assert.NoError(t, err)

	assert.InDelta(t, 1000*base.Scale, prefixed.Scale, 1e-12)
	assert.Equal(t, base.Vector, prefixed.Vector)
}

func TestParse_LeadingDanglingOperator(t *testing.T) {
	_, err := Parse("*m")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDanglingBinop))
}

func TestParse_DivisionWithNoOperand(t *testing.T) {
	// spec.md §9 open question: "1/" with no following term produces
	// DANGLING_BINOP at EOF.
	_, err := Parse("1/")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDanglingBinop))
}

func TestParse_SecondOpenBracket(t *testing.T) {
	_, err := Parse("[[m]")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnbalBracket))
}

func TestParse_BadNumMultiplier(t *testing.T) {
	_, err := Parse("105")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadNumMultiplier))
}

func TestParse_BadInitialSymbol(t *testing.T) {
	_, err := Parse("$")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadInitialSymbol))
}

func TestParse_ParenExponentForms(t *testing.T) {
	t.Run("rational", func(t *testing.T) {
		result, err := Parse("m**(1/2)")
		assert.NoError(t, err)
		assert.InDelta(t, 0.5, result.Vector[QLength], 1e-12)
	})

	t.Run("integer", func(t *testing.T) {
		result, err := Parse("m**(3)")
		assert.NoError(t, err)
		assert.InDelta(t, 3, result.Vector[QLength], 1e-12)
	})

	t.Run("decimal", func(t *testing.T) {
		result, err := Parse("m**(1.5)")
		assert.NoError(t, err)
		assert.InDelta(t, 1.5, result.Vector[QLength], 1e-12)
	})
}

func TestParse_Sqrt(t *testing.T) {
	result, err := Parse("sqrt(m**2)")
	assert.NoError(t, err)
	assert.InDelta(t, 1, result.Vector[QLength], 1e-12)
}

func TestParse_RecursionDepthExceeded(t *testing.T) {
	input := ""
	for i := 0; i < maxRecursionDepth+2; i++ {
		input += "("
	}
	input += "m"
	for i := 0; i < maxRecursionDepth+2; i++ {
		input += ")"
	}

	_, err := Parse(input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrParserError))
}

func TestParse_EveryErrorReturnsZeroResult(t *testing.T) {
	inputs := []string{"(", "m**", "m//s", "exp(log(Hz))", "$", "105", "*m"}

	for _, in := range inputs {
		result, err := Parse(in)
		assert.Error(t, err)
		assert.Equal(t, Result{}, result)
	}
}
