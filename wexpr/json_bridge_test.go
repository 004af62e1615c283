package wexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_NumbersStayExact(t *testing.T) {
	v, err := FromJSON([]byte(`{"big": 123456789012345678901234567890, "rate": 0.5}`))
	require.NoError(t, err)

	got, err := Emit(v)
	require.NoError(t, err)
	assert.Equal(t, `<|"big" -> 123456789012345678901234567890, "rate" -> 5.00000*10^-01|>`, got)
}

func TestFromJSON_ExponentLiteralIsReal(t *testing.T) {
	v, err := FromJSON([]byte(`1e3`))
	require.NoError(t, err)

	got, err := Emit(v)
	require.NoError(t, err)
	assert.Equal(t, "1000", got)
}

func TestFromJSON_NullRejected(t *testing.T) {
	_, err := FromJSON([]byte(`{"a": null}`))
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "$.a", unsupported.Path)
}

func TestFromJSON_ParseError(t *testing.T) {
	_, err := FromJSON([]byte(`{"a": `))
	require.Error(t, err)
}
