package pricing

import (
	"math"
	"time"

	"pos-backend/internal/domain"
)

// DefaultTaxRateBasisPoints is the 6% sales tax applied when no rate is
// configured.
const DefaultTaxRateBasisPoints = 600

// Line is one priced line item.
type Line struct {
	UnitPriceCents int64
	Quantity       int32
}

// Calculator computes subtotal, tax and coupon discounts for the
// processing engines. Rates are injected so deployments can carry
// per-jurisdiction tax without a code change.
type Calculator struct {
	taxRateBasisPoints int64
}

func NewCalculator(taxRateBasisPoints int64) *Calculator {
	return &Calculator{taxRateBasisPoints: taxRateBasisPoints}
}

// Subtotal sums unit price times quantity per line. Cents arithmetic is
// exact, so there is no intermediate rounding.
func (c *Calculator) Subtotal(lines []Line) int64 {
	var total int64
	for _, ln := range lines {
		total += ln.UnitPriceCents * int64(ln.Quantity)
	}
	return total
}

// Tax applies the configured rate to a subtotal, rounded half-up to the
// nearest cent.
func (c *Calculator) Tax(subtotalCents int64) int64 {
	return applyBasisPoints(subtotalCents, c.taxRateBasisPoints)
}

// Discount computes the coupon discount on a tax-inclusive total, rounded
// half-up. A nil, inactive or out-of-window coupon yields zero discount
// rather than an error. The discount never exceeds the total, so a
// mispriced coupon above 100 percent cannot drive a sale negative.
func (c *Calculator) Discount(totalWithTaxCents int64, coupon *domain.Coupon, at time.Time) int64 {
	if coupon == nil || !coupon.ValidAt(at) {
		return 0
	}
	bp := int64(math.Round(coupon.DiscountPercent * 100))
	if bp <= 0 {
		return 0
	}
	discount := applyBasisPoints(totalWithTaxCents, bp)
	if discount > totalWithTaxCents {
		return totalWithTaxCents
	}
	return discount
}

// applyBasisPoints multiplies cents by a basis-point rate and rounds
// half-up to the nearest cent. Inputs are non-negative.
func applyBasisPoints(cents, basisPoints int64) int64 {
	return (cents*basisPoints + 5000) / 10000
}
