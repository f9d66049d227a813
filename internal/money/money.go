// Package money provides a fixed-point monetary amount in minor currency
// units (cents). All engine arithmetic happens on integers; decimal strings
// only appear at the input/output boundary, so repeated divisions never
// accumulate float drift.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value in minor currency units.
// 1234 represents 12.34 currency units.
type Amount int64

var hundred = decimal.NewFromInt(100)

// Parse converts a decimal string to an Amount.
// Both dot (12.34) and comma (12,34) separators are accepted. Anything past
// the second decimal place is rounded half away from zero.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// FromDecimal converts a decimal value to minor units, rounding half away
// from zero at the third decimal place.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Mul(hundred).Round(0).IntPart())
}

// FromFloat converts a float to minor units. NaN and infinities are rejected
// so they can never reach a balance map.
func FromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite amount %v", f)
	}
	return FromDecimal(decimal.NewFromFloat(f)), nil
}

// Decimal returns the amount as an exact decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Float64 returns the amount in major units for display purposes only.
func (a Amount) Float64() float64 {
	return float64(a) / 100.0
}

// String formats the amount with two decimal places, e.g. "12.34".
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Abs returns the magnitude of the amount.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Split divides total into n parts that sum exactly to total.
// The first total%n parts receive one extra minor unit, so callers that pass
// a deterministically ordered participant list get deterministic shares.
// Panics if n <= 0; callers must check for empty participant sets first.
func Split(total Amount, n int) []Amount {
	if n <= 0 {
		panic(fmt.Sprintf("money: split into %d parts", n))
	}
	neg := total < 0
	if neg {
		total = -total
	}
	base := total / Amount(n)
	rem := total % Amount(n)
	parts := make([]Amount, n)
	for i := range parts {
		parts[i] = base
		if Amount(i) < rem {
			parts[i]++
		}
		if neg {
			parts[i] = -parts[i]
		}
	}
	return parts
}
