package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is identified by phone number and created lazily on first rental.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
}

// Employee is the acting operator of a transaction. Engines reference
// employees but never mutate them.
type Employee struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Position     string    `json:"position"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
