package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"50", 5000},
		{"50.00", 5000},
		{"50.5", 5050},
		{"0.01", 1},
		{"0", 0},
		{"1234.99", 123499},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAmountRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "-5", "+5", "5.123", "abc", "5.", "5.0.0", "1e3"} {
		_, err := ParseAmount(in)
		require.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestAmountString(t *testing.T) {
	require.Equal(t, "50.00", Amount(5000).String())
	require.Equal(t, "0.05", Amount(5).String())
	require.Equal(t, "-1.50", Amount(-150).String())
}

func TestAmountEquivalence(t *testing.T) {
	a, err := ParseAmount("50")
	require.NoError(t, err)
	b, err := ParseAmount("50.00")
	require.NoError(t, err)
	require.Equal(t, a, b)
}
