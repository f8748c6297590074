package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a unit of sellable/rentable inventory. ItemID is the stable
// business identifier terminals key on; ID is the storage key.
// Quantity is the stock on hand and never goes negative.
type Item struct {
	ID         uuid.UUID `json:"id"`
	ItemID     int32     `json:"item_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int32     `json:"quantity"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
