// Package money converts between decimal dollar amounts used at the API
// boundary and the integer minor units (cents) used for storage and
// arithmetic. Balances never touch floating point.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nvoronina/bankledger/internal/apperrors"
)

// ToMinorUnits converts a decimal dollar amount to cents.
// Amounts with more than two fractional digits don't round silently: they
// are rejected with apperrors.ErrInvalidAmount.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	scaled := amount.Shift(2)

	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than 2 decimal places: %w", amount, apperrors.ErrInvalidAmount)
	}

	return scaled.IntPart(), nil
}

// FromMinorUnits converts cents back to decimal dollars. Ex: 2350 -> 23.50
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

// HasAtMostTwoDecimalPlaces reports whether the amount fits the minor-unit
// scale. Used by the request validation layer via the 'money' validator tag.
func HasAtMostTwoDecimalPlaces(amount decimal.Decimal) bool {
	return amount.Shift(2).IsInteger()
}
