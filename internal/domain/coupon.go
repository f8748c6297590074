package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coupon applies a percentage discount to a sale's tax-inclusive total.
// Coupons are read-only to the engines.
type Coupon struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent float64    `json:"discount_percent"`
	Active          bool       `json:"active"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidTo         *time.Time `json:"valid_to,omitempty"`
	CreatedOn       time.Time  `json:"created_on"`
}

// ValidAt reports whether the coupon may be applied at the given instant.
// An unset window edge is treated as unbounded.
func (c *Coupon) ValidAt(t time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ValidFrom != nil && t.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidTo != nil && t.After(*c.ValidTo) {
		return false
	}
	return true
}
