package csvspan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeField(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantInner  string
		wantQuoted bool
	}{
		{"unquoted", "123", "123", false},
		{"quoted", `"123"`, "123", true},
		{"quoted empty", `""`, "", true},
		{"doubled quotes collapse", `"he said ""hi"""`, `he said "hi"`, true},
		{"single quote char is not quoted", `"`, `"`, false},
		{"whitespace survives decode", `" 12 "`, " 12 ", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, quoted := DecodeField(tt.raw)
			require.Equal(t, tt.wantInner, inner)
			require.Equal(t, tt.wantQuoted, quoted)
		})
	}
}

func TestEncodeField(t *testing.T) {
	// Quoting is restored only when the original was quoted.
	require.Equal(t, `"14"`, EncodeField("14", true))
	require.Equal(t, "14", EncodeField("14", false))
	require.Equal(t, `"say ""hi"""`, EncodeField(`say "hi"`, true))

	// An unquoted field is never re-quoted, even when the content
	// would call for it.
	require.Equal(t, `a"b`, EncodeField(`a"b`, false))
}

func TestCodecRoundTrip(t *testing.T) {
	for _, raw := range []string{`"007"`, "007", `" 1 "`, `"a""b"`} {
		inner, quoted := DecodeField(raw)
		require.Equal(t, raw, EncodeField(inner, quoted), "raw=%s", raw)
	}
}
