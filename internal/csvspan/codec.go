package csvspan

import "strings"

// DecodeField returns the logical inner text of a raw field and whether
// the field was quote-wrapped. A field counts as quoted only when its
// first and last byte are both the quote character and it is at least
// two bytes long; doubled quotes in the interior collapse to one.
func DecodeField(raw string) (inner string, quoted bool) {
	if len(raw) >= 2 && raw[0] == Quote && raw[len(raw)-1] == Quote {
		return strings.ReplaceAll(raw[1:len(raw)-1], `""`, `"`), true
	}
	return raw, false
}

// EncodeField re-renders inner text as a raw field. Quoting is restored
// only when the original field was quoted; an unquoted field is emitted
// verbatim even if its new content would call for quoting.
func EncodeField(inner string, quoted bool) string {
	if !quoted {
		return inner
	}
	return `"` + strings.ReplaceAll(inner, `"`, `""`) + `"`
}
