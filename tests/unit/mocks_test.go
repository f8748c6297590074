package unit

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pos-backend/internal/domain"
	"pos-backend/internal/service"
)

// PassthroughTxManager runs the callback directly so service logic can
// be exercised without a database.
type PassthroughTxManager struct{}

func (PassthroughTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) GetByItemID(ctx context.Context, itemID int32) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) GetByItemIDForUpdate(ctx context.Context, itemID int32) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) SearchByName(ctx context.Context, name string) ([]domain.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListBelowThreshold(ctx context.Context, threshold int32) ([]domain.Item, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// MockCouponRepo
type MockCouponRepo struct {
	mock.Mock
}

func (m *MockCouponRepo) Create(ctx context.Context, coupon *domain.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}
func (m *MockCouponRepo) GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

// MockSaleRepo
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
func (m *MockSaleRepo) CreateLine(ctx context.Context, line *domain.SaleLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) ListLines(ctx context.Context, saleID uuid.UUID) ([]domain.SaleLine, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).([]domain.SaleLine), args.Error(1)
}
func (m *MockSaleRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Sale, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CreateLine(ctx context.Context, line *domain.RentalLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockRentalRepo) GetLineByID(ctx context.Context, id uuid.UUID) (*domain.RentalLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalLine), args.Error(1)
}
func (m *MockRentalRepo) UpdateLine(ctx context.Context, line *domain.RentalLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockRentalRepo) ListLines(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalLine, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalLine), args.Error(1)
}

// MockReturnRepo
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) Create(ctx context.Context, ret *domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}
func (m *MockReturnRepo) CreateLine(ctx context.Context, line *domain.ReturnLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockReturnRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Return, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}
func (m *MockReturnRepo) ListLines(ctx context.Context, returnID uuid.UUID) ([]domain.ReturnLine, error) {
	args := m.Called(ctx, returnID)
	return args.Get(0).([]domain.ReturnLine), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueSummary(ctx context.Context, to string, notices []service.OverdueNotice) error {
	args := m.Called(ctx, to, notices)
	return args.Error(0)
}
func (m *MockEmailService) SendLowStockAlert(ctx context.Context, to string, items []domain.Item) error {
	args := m.Called(ctx, to, items)
	return args.Error(0)
}
