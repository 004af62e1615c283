package wexpr

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIntegral(t *testing.T) {
	assert.True(t, isIntegral(0))
	assert.True(t, isIntegral(-3))
	assert.True(t, isIntegral(1e15))
	assert.False(t, isIntegral(0.5))
	assert.False(t, isIntegral(math.NaN()))
	assert.False(t, isIntegral(math.Inf(1)))
	assert.False(t, isIntegral(math.Inf(-1)))
}

func TestIsValidSymbol(t *testing.T) {
	valid := []string{"cat", "Cat", "x1", "$Context", "a$b", "T2b"}
	for _, s := range valid {
		assert.True(t, isValidSymbol(s), s)
	}

	invalid := []string{"", "1x", "two words", "dash-ed", "dot.ted", "quote\"", "päron"}
	for _, s := range invalid {
		assert.False(t, isValidSymbol(s), s)
	}
}

func TestSciNotation_RoundTrip(t *testing.T) {
	// mantissa * 10^exponent must reproduce the input within 10^-prec
	// relative error.
	inputs := []float64{0.5, -1.0 / 999, 3.14159265, 6.022e23, -2.5e-7}
	for _, f := range inputs {
		for prec := 1; prec <= 8; prec++ {
			s := sciNotation(f, prec)
			var mantissa float64
			var exponent int
			_, err := fmt.Sscanf(s, "%g*10^%d", &mantissa, &exponent)
			assert.NoError(t, err, s)
			got := mantissa * math.Pow(10, float64(exponent))
			rel := math.Abs(got-f) / math.Abs(f)
			assert.LessOrEqual(t, rel, math.Pow(10, -float64(prec)), s)
		}
	}
}
