package channel

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency holds a frequency (in MHz) as exact decimal, together with its
// textual representation.
type Frequency struct {
	text  string
	value decimal.Decimal
}

// ParseFrequency parses the given decimal string. The text is kept verbatim.
func ParseFrequency(s string) (Frequency, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Frequency{}, err
	}
	return Frequency{text: s, value: d}, nil
}

// Add returns f shifted by the given offset. The result keeps the largest
// number of fractional digits of both operands.
func (f Frequency) Add(offset decimal.Decimal) Frequency {
	v := f.value.Add(offset)
	return Frequency{text: formatDecimal(v), value: v}
}

// Cmp compares f to o.
func (f Frequency) Cmp(o Frequency) int {
	return f.value.Cmp(o.value)
}

// Decimal returns the decimal value.
func (f Frequency) Decimal() decimal.Decimal {
	return f.value
}

// String implements fmt.Stringer.
func (f Frequency) String() string {
	return f.text
}

func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
