// Package edit applies span replacements to an immutable text buffer.
package edit

import (
	"sort"
	"strings"
)

// Edit replaces the half-open byte range [Start, End) of the original
// buffer with Replacement. Offsets are always measured against the
// original buffer, never against partially edited output.
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// Apply rebuilds text with all edits substituted. Edits must not overlap;
// they may arrive in any order. Unedited regions are copied verbatim, so
// the result differs from the input only inside edited spans.
func Apply(text string, edits []Edit) string {
	if len(edits) == 0 {
		return text
	}

	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, e := range ordered {
		b.WriteString(text[pos:e.Start])
		b.WriteString(e.Replacement)
		pos = e.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
