package domain

import "github.com/google/uuid"

// Request shapes accepted by the processing engines. Dates travel as
// yyyy-mm-dd strings and are parsed at the service boundary.

type SaleLineRequest struct {
	ItemID   int32 `json:"item_id"`
	Quantity int32 `json:"quantity"`
}

type SaleRequest struct {
	Items      []SaleLineRequest `json:"items"`
	CouponCode string            `json:"coupon_code,omitempty"`
}

type RentalLineRequest struct {
	ItemID   int32 `json:"item_id"`
	Quantity int32 `json:"quantity"`
}

type RentalRequest struct {
	CustomerPhone string              `json:"customer_phone"`
	DueDate       string              `json:"due_date"`
	Items         []RentalLineRequest `json:"items"`
}

type ReturnLineRequest struct {
	RentalLineID uuid.UUID `json:"rental_line_id"`
	Quantity     int32     `json:"quantity"`
}

type ReturnRequest struct {
	Items []ReturnLineRequest `json:"items"`
}
