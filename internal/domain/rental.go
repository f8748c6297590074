package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rental is a purchase-with-obligation: every line must eventually come
// back. The aggregate itself is immutable after creation; only its lines'
// returned state changes.
type Rental struct {
	ID            uuid.UUID    `json:"id"`
	CustomerID    uuid.UUID    `json:"customer_id"`
	EmployeeID    uuid.UUID    `json:"employee_id"`
	RentalDate    time.Time    `json:"rental_date"`
	DueDate       time.Time    `json:"due_date"`
	SubtotalCents int64        `json:"subtotal_cents"`
	TaxCents      int64        `json:"tax_cents"`
	CreatedOn     time.Time    `json:"created_on"`
	Lines         []RentalLine `json:"lines,omitempty"`
}

// RentalLine is the only entity mutated after creation: a partial return
// shrinks its quantity and spawns a sibling line for the remainder.
// DaysOverdue is a derived annotation set by the outstanding query; it is
// never persisted.
type RentalLine struct {
	ID             uuid.UUID  `json:"id"`
	RentalID       uuid.UUID  `json:"rental_id"`
	ItemID         uuid.UUID  `json:"item_id"`
	Quantity       int32      `json:"quantity"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	Returned       bool       `json:"returned"`
	ReturnDate     *time.Time `json:"return_date,omitempty"`
	DaysOverdue    int32      `json:"days_overdue"`
}
