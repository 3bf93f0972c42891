package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// parseAmountCents converts a decimal amount string ("12.50") into integer
// cents (1250). Rejects non-numeric input, amounts <= 0 and sub-cent
// precision.
func parseAmountCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, domain.ErrInvalidField("amount", "must be a number")
	}
	if !d.IsPositive() {
		return 0, domain.ErrInvalidField("amount", "must be greater than 0")
	}

	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return 0, domain.ErrInvalidField("amount", "at most 2 decimal places")
	}
	// IntPart wraps silently past int64; reject instead of storing garbage.
	if !cents.BigInt().IsInt64() {
		return 0, domain.ErrInvalidField("amount", "too large")
	}
	return cents.IntPart(), nil
}
