package param

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseMultiplier(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.00", want: "1.00"},
		{in: "0", want: "0"},
		{in: "0.00", want: "0.00"},
		{in: "10", want: "10"},
		{in: "10.00", want: "10.00"},
		{in: " 2.5 ", want: "2.5"},
		{in: "0.1", want: "0.1"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1,5", wantErr: true},
		{in: "-0.01", wantErr: true},
		{in: "10.01", wantErr: true},
		{in: "11", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMultiplier(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMultiplier)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, FormatMultiplier(got))
		})
	}
}

func TestFormatMultiplierKeepsScale(t *testing.T) {
	// Decimal.String() folds 2.00 down to "2"; the multiplier keeps the
	// scale the user typed so output names stay distinguishable.
	tests := []struct {
		in   string
		want string
	}{
		{"2.00", "2.00"},
		{"2", "2"},
		{"2.0", "2.0"},
		{"0.50", "0.50"},
		{"10.00", "10.00"},
		{"0", "0"},
	}

	for _, tt := range tests {
		m, err := ParseMultiplier(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, FormatMultiplier(m), "input %q", tt.in)
	}
}

func TestParseMultiplierIsExact(t *testing.T) {
	// One tenth must be exactly one tenth: scaling 10^20 by it gives
	// 10^19 with no representation error.
	m, err := ParseMultiplier("0.1")
	require.NoError(t, err)

	huge := decimal.RequireFromString("100000000000000000000")
	require.Equal(t, "10000000000000000000", huge.Mul(m).String())
}
