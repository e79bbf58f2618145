// Package numtext recognizes and rescales integer literals embedded in
// field text while preserving the surrounding whitespace byte-for-byte.
package numtext

import (
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// SplitCore splits s into leading whitespace, core, and trailing
// whitespace. The whitespace runs are captured exactly so the caller can
// re-attach them unchanged; a blank string yields an empty core with all
// of s in lead.
func SplitCore(s string) (lead, core, trail string) {
	start := 0
	for start < len(s) {
		r, size := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	end := len(s)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return s[:start], s[start:end], s[end:]
}

// IsInteger reports whether core is a plain integer literal: an optional
// leading '+' or '-' followed by one or more ASCII digits and nothing
// else.
func IsInteger(core string) bool {
	if core == "" {
		return false
	}
	digits := core
	if core[0] == '+' || core[0] == '-' {
		digits = core[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// ParseInteger parses an integer core into an exact decimal. The core
// must already satisfy IsInteger.
func ParseInteger(core string) (decimal.Decimal, error) {
	return decimal.NewFromString(core)
}

// Scale multiplies v by m exactly and rounds the product to an integer,
// half away from zero.
func Scale(v, m decimal.Decimal) decimal.Decimal {
	return v.Mul(m).Round(0)
}

// Render formats an integer-valued decimal canonically: no leading
// zeros, no explicit '+', a single '-' for negatives.
func Render(v decimal.Decimal) string {
	return v.String()
}
