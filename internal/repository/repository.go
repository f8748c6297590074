package repository

import (
	"context"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
)

// TxManager executes fn within a single database transaction. Repository
// calls made with the context passed to fn join that transaction, so a
// failure anywhere in fn rolls back every mutation made inside it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Lookups return domain.ErrNotFound (wrapped) when no row matches.

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetByItemID(ctx context.Context, itemID int32) (*domain.Item, error)
	// GetByItemIDForUpdate locks the item row for the duration of the
	// surrounding transaction so concurrent stock read-modify-writes on
	// the same item serialize.
	GetByItemIDForUpdate(ctx context.Context, itemID int32) (*domain.Item, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	// UpdateQuantity writes a new stock level. The implementation must
	// refuse negative quantities.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) error
	Update(ctx context.Context, item *domain.Item) error
	List(ctx context.Context) ([]domain.Item, error)
	SearchByName(ctx context.Context, name string) ([]domain.Item, error)
	ListBelowThreshold(ctx context.Context, threshold int32) ([]domain.Item, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	// GetActiveByCode resolves only coupons flagged active. Validity
	// windows are evaluated by the caller.
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	CreateLine(ctx context.Context, line *domain.SaleLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	ListLines(ctx context.Context, saleID uuid.UUID) ([]domain.SaleLine, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Sale, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error)

	CreateLine(ctx context.Context, line *domain.RentalLine) error
	GetLineByID(ctx context.Context, id uuid.UUID) (*domain.RentalLine, error)
	UpdateLine(ctx context.Context, line *domain.RentalLine) error
	ListLines(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalLine, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, ret *domain.Return) error
	CreateLine(ctx context.Context, line *domain.ReturnLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Return, error)
	ListLines(ctx context.Context, returnID uuid.UUID) ([]domain.ReturnLine, error)
}
