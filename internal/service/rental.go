package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
	"pos-backend/internal/logger"
	"pos-backend/internal/pricing"
	"pos-backend/internal/repository"
)

type rentalService struct {
	tx           repository.TxManager
	rentalRepo   repository.RentalRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	calc         *pricing.Calculator
}

func NewRentalService(
	tx repository.TxManager,
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	calc *pricing.Calculator,
) RentalService {
	return &rentalService{
		tx:           tx,
		rentalRepo:   rentalRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		calc:         calc,
	}
}

func (s *rentalService) ProcessRental(ctx context.Context, employeeID uuid.UUID, req domain.RentalRequest) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.ProcessRental", "employeeID", employeeID, "lineCount", len(req.Items))

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", domain.ErrInvalidRequest)
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", domain.ErrInvalidRequest, req.DueDate)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: rental must contain at least one line item", domain.ErrInvalidRequest)
	}

	var rental *domain.Rental
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Create-on-miss; uniqueness on phone is the persistence
		// layer's guarantee.
		customer, err := s.customerRepo.GetByPhone(ctx, phone)
		if errors.Is(err, domain.ErrNotFound) {
			customer = &domain.Customer{Phone: phone}
			if err := s.customerRepo.Create(ctx, customer); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		employee, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		lines := make([]domain.RentalLine, 0, len(req.Items))
		priced := make([]pricing.Line, 0, len(req.Items))
		for _, lr := range req.Items {
			if lr.Quantity <= 0 {
				return fmt.Errorf("item %d: %w", lr.ItemID, domain.ErrInvalidQuantity)
			}

			item, err := s.itemRepo.GetByItemIDForUpdate(ctx, lr.ItemID)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("item %d: %w", lr.ItemID, domain.ErrNotFound)
			}
			if err != nil {
				return err
			}
			if item.Quantity < lr.Quantity {
				return fmt.Errorf("%w for item %q", domain.ErrInsufficientStock, item.Name)
			}
			if err := s.itemRepo.UpdateQuantity(ctx, item.ID, item.Quantity-lr.Quantity); err != nil {
				return err
			}

			lines = append(lines, domain.RentalLine{
				ID:             uuid.New(),
				ItemID:         item.ID,
				Quantity:       lr.Quantity,
				UnitPriceCents: item.PriceCents,
			})
			priced = append(priced, pricing.Line{UnitPriceCents: item.PriceCents, Quantity: lr.Quantity})
		}

		subtotal := s.calc.Subtotal(priced)

		rental = &domain.Rental{
			ID:            uuid.New(),
			CustomerID:    customer.ID,
			EmployeeID:    employee.ID,
			DueDate:       dueDate,
			SubtotalCents: subtotal,
			TaxCents:      s.calc.Tax(subtotal),
		}
		if err := s.rentalRepo.Create(ctx, rental); err != nil {
			return err
		}
		for i := range lines {
			lines[i].RentalID = rental.ID
			if err := s.rentalRepo.CreateLine(ctx, &lines[i]); err != nil {
				return err
			}
		}
		rental.Lines = lines
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.ProcessRental", err, "employeeID", employeeID)
		return nil, err
	}

	logger.ExitMethod("rentalService.ProcessRental", "rentalID", rental.ID, "dueDate", rental.DueDate)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentalsByCustomer(ctx context.Context, phone string) ([]domain.Rental, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Rental{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.rentalRepo.ListByCustomer(ctx, customer.ID)
}

func (s *rentalService) ListOutstanding(ctx context.Context, phone string) ([]domain.RentalLine, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.RentalLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	rentals, err := s.rentalRepo.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	today := startOfDay(time.Now())
	outstanding := []domain.RentalLine{}
	for _, rt := range rentals {
		overdue := DaysOverdue(today, rt.DueDate)
		for _, ln := range rt.Lines {
			if ln.Returned {
				continue
			}
			if overdue > 0 {
				ln.DaysOverdue = overdue
			}
			outstanding = append(outstanding, ln)
		}
	}
	return outstanding, nil
}

// DaysOverdue returns the whole days elapsed since the due date, or 0 when
// the due date is today or later.
func DaysOverdue(today, dueDate time.Time) int32 {
	days := int32(startOfDay(today).Sub(startOfDay(dueDate)) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
