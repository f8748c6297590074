package domain

import (
	"time"

	"github.com/google/uuid"
)

// Return reverses part or all of a rental's outstanding lines.
// Immutable after creation.
type Return struct {
	ID               uuid.UUID    `json:"id"`
	RentalID         uuid.UUID    `json:"rental_id"`
	EmployeeID       uuid.UUID    `json:"employee_id"`
	TotalRefundCents int64        `json:"total_refund_cents"`
	CreatedOn        time.Time    `json:"created_on"`
	Lines            []ReturnLine `json:"lines,omitempty"`
}

// ReturnLine records how much of one rental line came back and the refund
// computed from the rental-time unit price.
type ReturnLine struct {
	ID           uuid.UUID `json:"id"`
	ReturnID     uuid.UUID `json:"return_id"`
	RentalLineID uuid.UUID `json:"rental_line_id"`
	Quantity     int32     `json:"quantity"`
	RefundCents  int64     `json:"refund_cents"`
}
