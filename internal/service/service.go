package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
)

type AuthService interface {
	// Login verifies an employee's credentials and issues an access token.
	Login(ctx context.Context, username, password string) (string, *domain.Employee, error)
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, username, firstName, lastName, position, password string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, firstName, lastName, position, password string) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

type InventoryService interface {
	CreateItem(ctx context.Context, itemID int32, name string, priceCents int64, quantity int32) (*domain.Item, error)
	GetItemByItemID(ctx context.Context, itemID int32) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	SearchItems(ctx context.Context, name string) ([]domain.Item, error)
	ListLowStockItems(ctx context.Context, threshold int32) ([]domain.Item, error)
	UpdateItemQuantity(ctx context.Context, itemID int32, quantity int32) (*domain.Item, error)
}

type SaleService interface {
	// ProcessSale runs the whole purchase as one atomic unit of work:
	// stock decrements and the persisted aggregate commit together or
	// not at all.
	ProcessSale(ctx context.Context, employeeID uuid.UUID, req domain.SaleRequest) (*domain.Sale, error)
	GetSale(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	ListSalesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Sale, error)
}

type RentalService interface {
	ProcessRental(ctx context.Context, employeeID uuid.UUID, req domain.RentalRequest) (*domain.Rental, error)
	GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListRentalsByCustomer(ctx context.Context, phone string) ([]domain.Rental, error)
	// ListOutstanding returns every unreturned rental line for the
	// customer, annotated with days overdue where the due date has
	// passed. An unknown customer yields an empty result.
	ListOutstanding(ctx context.Context, phone string) ([]domain.RentalLine, error)
}

type ReturnService interface {
	ProcessReturn(ctx context.Context, employeeID uuid.UUID, req domain.ReturnRequest) (*domain.Return, error)
	GetReturn(ctx context.Context, id uuid.UUID) (*domain.Return, error)
}

// OverdueNotice is one unreturned rental line past its due date, shaped
// for the reminder email.
type OverdueNotice struct {
	CustomerPhone string
	ItemName      string
	Quantity      int32
	DueDate       time.Time
	DaysOverdue   int32
}

type EmailService interface {
	SendOverdueSummary(ctx context.Context, to string, notices []OverdueNotice) error
	SendLowStockAlert(ctx context.Context, to string, items []domain.Item) error
}
