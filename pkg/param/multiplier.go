package param

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Multiplier bounds, inclusive.
var (
	MinMultiplier = decimal.Zero
	MaxMultiplier = decimal.NewFromInt(10)
)

// ParseMultiplier parses a user-supplied multiplier string into an exact
// decimal. The value must be a decimal numeral within [0.00, 10.00];
// anything else returns an error wrapping ErrInvalidMultiplier. The
// result is exact — parsing never passes through binary floating point.
func ParseMultiplier(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: multiplier must be a number", ErrInvalidMultiplier)
	}
	if d.LessThan(MinMultiplier) || d.GreaterThan(MaxMultiplier) {
		return decimal.Decimal{}, fmt.Errorf("%w: multiplier must be between 0.00 and 10.00", ErrInvalidMultiplier)
	}
	return d, nil
}

// FormatMultiplier renders a multiplier with the decimal scale it was
// parsed with, so 2.00 stays "2.00". Decimal's own String trims
// trailing fractional zeros, which would fold 2.00 and 2 into the same
// output name.
func FormatMultiplier(m decimal.Decimal) string {
	if exp := m.Exponent(); exp < 0 {
		return m.StringFixed(-exp)
	}
	return m.String()
}
