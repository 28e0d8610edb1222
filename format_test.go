package decimal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringDigitBranches(t *testing.T) {
	tests := []struct {
		name string
		d    *Decimal
		want string
	}{
		{"no-fraction", New(NoOp, 123, 0), "123"},
		{"fraction-split", New(NoOp, 12345, -2), "123.45"},
		{"fraction-exact-leading-zero", New(NoOp, 123, -3), "0.123"},
		{"fraction-needs-padding", New(NoOp, 5, -3), "0.005"},
		{"positive-exponent-pads-zeros", New(NoOp, 5, 2), "500"},
		{"negative-value", New(NoOp, -500, -1), "-50.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestStringSpecialValues(t *testing.T) {
	assert.Equal(t, "NaN", NaNValue(NoOp, false).String())
	assert.Equal(t, "-NaN", NaNValue(NoOp, true).String())
	assert.Equal(t, "Infinity", InfinityValue(NoOp, false).String())
	assert.Equal(t, "-Infinity", InfinityValue(NoOp, true).String())
}

func TestFormatVerbs(t *testing.T) {
	d := New(NoOp, 314, -2)
	assert.Equal(t, "3.14", fmt.Sprintf("%s", d))
	assert.Equal(t, "3.14", fmt.Sprintf("%v", d))
	assert.Equal(t, "3.14", fmt.Sprintf("%d", d))
	assert.Equal(t, `"3.14"`, fmt.Sprintf("%q", d))
}

func TestFormatUnsupportedVerb(t *testing.T) {
	d := New(NoOp, 314, -2)
	got := fmt.Sprintf("%x", d)
	assert.Contains(t, got, "3.14")
	assert.Contains(t, got, "%!x")
}

func TestMarshalTextFinite(t *testing.T) {
	d := New(NoOp, 12345, -2)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "123.45", string(b))
}

func TestUnmarshalTextWellFormed(t *testing.T) {
	var d Decimal
	require.NoError(t, d.UnmarshalText([]byte("-7.5")))
	assert.Equal(t, "-7.5", d.String())
	assert.Nil(t, d.ParseError())
}

func TestUnmarshalTextMalformedSetsNaNNoError(t *testing.T) {
	var d Decimal
	err := d.UnmarshalText([]byte("not-a-number"))
	require.NoError(t, err)
	assert.True(t, d.IsNaN())
	assert.True(t, d.InvalidOperation())
	require.Error(t, d.ParseError())
}
