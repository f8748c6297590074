package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
	"pos-backend/internal/logger"
	"pos-backend/internal/repository"
)

type returnService struct {
	tx           repository.TxManager
	returnRepo   repository.ReturnRepository
	rentalRepo   repository.RentalRepository
	itemRepo     repository.ItemRepository
	employeeRepo repository.EmployeeRepository
}

func NewReturnService(
	tx repository.TxManager,
	returnRepo repository.ReturnRepository,
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	employeeRepo repository.EmployeeRepository,
) ReturnService {
	return &returnService{
		tx:           tx,
		returnRepo:   returnRepo,
		rentalRepo:   rentalRepo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
	}
}

// ProcessReturn reverses part or all of a rental's outstanding lines.
// All return requests in one call must belong to a single rental.
func (s *returnService) ProcessReturn(ctx context.Context, employeeID uuid.UUID, req domain.ReturnRequest) (*domain.Return, error) {
	logger.EnterMethod("returnService.ProcessReturn", "employeeID", employeeID, "lineCount", len(req.Items))

	if len(req.Items) == 0 {
		return nil, domain.ErrNoRentalFound
	}

	var ret *domain.Return
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		employee, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		var rentalID uuid.UUID
		var totalRefund int64
		returnDate := time.Now()
		lines := make([]domain.ReturnLine, 0, len(req.Items))

		for _, lr := range req.Items {
			line, err := s.rentalRepo.GetLineByID(ctx, lr.RentalLineID)
			if err != nil {
				return err
			}

			if lr.Quantity <= 0 || lr.Quantity > line.Quantity {
				return fmt.Errorf("rental line %s: %w", line.ID, domain.ErrInvalidQuantity)
			}
			if line.Returned {
				return fmt.Errorf("rental line %s: %w", line.ID, domain.ErrAlreadyReturned)
			}

			if rentalID == uuid.Nil {
				rentalID = line.RentalID
			} else if rentalID != line.RentalID {
				return domain.ErrCrossRentalReturn
			}

			// Refund at the rental-time unit price, never the item's
			// current price.
			refund := line.UnitPriceCents * int64(lr.Quantity)
			totalRefund += refund

			when := returnDate
			if lr.Quantity < line.Quantity {
				// Partial return: the original line id keeps the returned
				// portion; a fresh sibling carries the unreturned
				// remainder.
				remainder := &domain.RentalLine{
					ID:             uuid.New(),
					RentalID:       line.RentalID,
					ItemID:         line.ItemID,
					Quantity:       line.Quantity - lr.Quantity,
					UnitPriceCents: line.UnitPriceCents,
				}
				if err := s.rentalRepo.CreateLine(ctx, remainder); err != nil {
					return err
				}
				line.Quantity = lr.Quantity
			}
			line.Returned = true
			line.ReturnDate = &when
			if err := s.rentalRepo.UpdateLine(ctx, line); err != nil {
				return err
			}

			// Restore stock under the row lock.
			item, err := s.itemRepo.GetByIDForUpdate(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if err := s.itemRepo.UpdateQuantity(ctx, item.ID, item.Quantity+lr.Quantity); err != nil {
				return err
			}

			lines = append(lines, domain.ReturnLine{
				ID:           uuid.New(),
				RentalLineID: line.ID,
				Quantity:     lr.Quantity,
				RefundCents:  refund,
			})
		}

		if rentalID == uuid.Nil {
			return domain.ErrNoRentalFound
		}

		ret = &domain.Return{
			ID:               uuid.New(),
			RentalID:         rentalID,
			EmployeeID:       employee.ID,
			TotalRefundCents: totalRefund,
		}
		if err := s.returnRepo.Create(ctx, ret); err != nil {
			return err
		}
		for i := range lines {
			lines[i].ReturnID = ret.ID
			if err := s.returnRepo.CreateLine(ctx, &lines[i]); err != nil {
				return err
			}
		}
		ret.Lines = lines
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("returnService.ProcessReturn", err, "employeeID", employeeID)
		return nil, err
	}

	logger.ExitMethod("returnService.ProcessReturn", "returnID", ret.ID, "refundCents", ret.TotalRefundCents)
	return ret, nil
}

func (s *returnService) GetReturn(ctx context.Context, id uuid.UUID) (*domain.Return, error) {
	return s.returnRepo.GetByID(ctx, id)
}
