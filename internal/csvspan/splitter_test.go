package csvspan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// cut extracts the text covered by each span.
func cut(text string, spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, text[s.Start:s.End])
	}
	return out
}

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input yields no spans",
			text: "",
			want: []string{},
		},
		{
			name: "two lines with trailing newline",
			text: "a,b\n1,2\n",
			want: []string{"a,b\n", "1,2\n"},
		},
		{
			name: "final record without terminator",
			text: "a,b\n1,2",
			want: []string{"a,b\n", "1,2"},
		},
		{
			name: "crlf terminators stay inside the span",
			text: "a,b\r\n1,2\r\n",
			want: []string{"a,b\r\n", "1,2\r\n"},
		},
		{
			name: "newline inside quotes does not split",
			text: "a,b\n1,\"x\ny\"\n",
			want: []string{"a,b\n", "1,\"x\ny\"\n"},
		},
		{
			name: "escaped quote does not close the section",
			text: "a\n\"he said \"\"hi\"\"\nbye\"\n",
			want: []string{"a\n", "\"he said \"\"hi\"\"\nbye\"\n"},
		},
		{
			name: "blank line is its own record",
			text: "a\n\nb\n",
			want: []string{"a\n", "\n", "b\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRecords(tt.text)
			require.Equal(t, tt.want, cut(tt.text, got))
		})
	}
}

func TestSplitRecords_SpansAreContiguous(t *testing.T) {
	text := "a,b\r\n\"x,\ny\",2\n3,4"
	spans := SplitRecords(text)
	require.NotEmpty(t, spans)
	require.Equal(t, 0, spans[0].Start)
	for i := 1; i < len(spans); i++ {
		require.Equal(t, spans[i-1].End, spans[i].Start)
	}
	require.Equal(t, len(text), spans[len(spans)-1].End)
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   []string
	}{
		{
			name:   "plain fields",
			record: "a,b,c",
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "empty body is one empty field",
			record: "",
			want:   []string{""},
		},
		{
			name:   "trailing comma yields trailing empty field",
			record: "a,",
			want:   []string{"a", ""},
		},
		{
			name:   "comma inside quotes does not split",
			record: `1,"2,3",4`,
			want:   []string{"1", `"2,3"`, "4"},
		},
		{
			name:   "escaped quotes stay inside one field",
			record: `"a""b,c",d`,
			want:   []string{`"a""b,c"`, "d"},
		},
		{
			name:   "interior whitespace is preserved",
			record: " 1 ,  2",
			want:   []string{" 1 ", "  2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFields(tt.record)
			require.Equal(t, tt.want, cut(tt.record, got))
		})
	}
}

func TestRecordBody(t *testing.T) {
	require.Equal(t, "a,b", RecordBody("a,b\n"))
	require.Equal(t, "a,b", RecordBody("a,b\r\n"))
	require.Equal(t, "a,b", RecordBody("a,b"))
	require.Equal(t, "", RecordBody("\n"))
	require.Equal(t, "", RecordBody(""))
	// A bare \r not followed by \n is content, not a terminator.
	require.Equal(t, "a\r", RecordBody("a\r"))
}
