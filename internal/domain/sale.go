package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a one-shot purchase with no obligation to return items.
// Immutable after creation.
type Sale struct {
	ID            uuid.UUID  `json:"id"`
	EmployeeID    uuid.UUID  `json:"employee_id"`
	SubtotalCents int64      `json:"subtotal_cents"`
	TaxCents      int64      `json:"tax_cents"`
	DiscountCents int64      `json:"discount_cents"`
	TotalCents    int64      `json:"total_cents"`
	CouponCode    string     `json:"coupon_code,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	Lines         []SaleLine `json:"lines,omitempty"`
}

// SaleLine captures the unit price at sale time, decoupled from later
// item price changes.
type SaleLine struct {
	ID             uuid.UUID `json:"id"`
	SaleID         uuid.UUID `json:"sale_id"`
	ItemID         uuid.UUID `json:"item_id"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}
