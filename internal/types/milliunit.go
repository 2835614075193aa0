package types

import (
	"github.com/shopspring/decimal"
)

// Milliunit is a monetary amount in thousandths of the budget's currency
// unit. All ledger math is integer math on this type, amounts only become
// decimals at the API boundary.
type Milliunit int64

// MaxAssignable is the largest magnitude that can be assigned to a category
// in a single month. Input beyond it is clamped, not rejected.
const MaxAssignable Milliunit = 100_000_000_000

// Abs returns the absolute value.
func (m Milliunit) Abs() Milliunit {
	if m < 0 {
		return -m
	}

	return m
}

// Decimal returns the amount in currency units.
func (m Milliunit) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -3)
}

// String returns the amount in currency units with three decimal places.
func (m Milliunit) String() string {
	return m.Decimal().StringFixed(3)
}

// ClampAssignable converts a decimal number of milliunits into a Milliunit
// suitable for an assignment.
//
// Fractional milliunits are rounded half away from zero. Magnitudes beyond
// MaxAssignable are clamped to ±MaxAssignable; the second return value
// reports whether clamping happened. The comparison runs on the decimal so
// that values beyond the int64 range are absorbed instead of overflowing.
func ClampAssignable(d decimal.Decimal) (Milliunit, bool) {
	rounded := d.Round(0)

	limit := decimal.NewFromInt(int64(MaxAssignable))
	if rounded.Abs().GreaterThan(limit) {
		if rounded.IsNegative() {
			return -MaxAssignable, true
		}

		return MaxAssignable, true
	}

	return Milliunit(rounded.IntPart()), false
}
