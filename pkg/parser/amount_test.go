package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmountInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"1.5", "1.5"},
		// Comma is accepted as the decimal separator.
		{"1,5", "1.5"},
		{" 100.25 ", "100.25"},
		{".5", ".5"},
		{"0", "0"},
	}

	for _, tt := range tests {
		got, err := NormalizeAmountInput(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNormalizeAmountInputInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1,2,3", "-5", "1 000", "10."} {
		_, err := NormalizeAmountInput(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestIsZeroAmount(t *testing.T) {
	assert.True(t, IsZeroAmount(""))
	assert.True(t, IsZeroAmount("0"))
	assert.True(t, IsZeroAmount("0.00"))
	assert.False(t, IsZeroAmount("0.5"))
	assert.False(t, IsZeroAmount("10"))
}
