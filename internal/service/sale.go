package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
	"pos-backend/internal/logger"
	"pos-backend/internal/pricing"
	"pos-backend/internal/repository"
)

type saleService struct {
	tx           repository.TxManager
	saleRepo     repository.SaleRepository
	itemRepo     repository.ItemRepository
	employeeRepo repository.EmployeeRepository
	couponRepo   repository.CouponRepository
	calc         *pricing.Calculator
}

func NewSaleService(
	tx repository.TxManager,
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	employeeRepo repository.EmployeeRepository,
	couponRepo repository.CouponRepository,
	calc *pricing.Calculator,
) SaleService {
	return &saleService{
		tx:           tx,
		saleRepo:     saleRepo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
		couponRepo:   couponRepo,
		calc:         calc,
	}
}

func (s *saleService) ProcessSale(ctx context.Context, employeeID uuid.UUID, req domain.SaleRequest) (*domain.Sale, error) {
	logger.EnterMethod("saleService.ProcessSale", "employeeID", employeeID, "lineCount", len(req.Items))

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: sale must contain at least one line item", domain.ErrInvalidRequest)
	}

	var sale *domain.Sale
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		employee, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		lines := make([]domain.SaleLine, 0, len(req.Items))
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

			// Decrement inside the transaction so a later line referencing
			// the same item sees the reduced stock.
			if err := s.itemRepo.UpdateQuantity(ctx, item.ID, item.Quantity-lr.Quantity); err != nil {
				return err
			}

			lines = append(lines, domain.SaleLine{
				ID:             uuid.New(),
				ItemID:         item.ID,
				Quantity:       lr.Quantity,
				UnitPriceCents: item.PriceCents,
				SubtotalCents:  item.PriceCents * int64(lr.Quantity),
			})
			priced = append(priced, pricing.Line{UnitPriceCents: item.PriceCents, Quantity: lr.Quantity})
		}

		subtotal := s.calc.Subtotal(priced)
		tax := s.calc.Tax(subtotal)
		totalWithTax := subtotal + tax

		var discount int64
		var couponCode string
		if req.CouponCode != "" {
			coupon, err := s.couponRepo.GetActiveByCode(ctx, req.CouponCode)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			// Unknown, inactive or out-of-window codes fall through as
			// zero discount rather than failing the sale.
			now := time.Now()
			if coupon != nil && coupon.ValidAt(now) {
				discount = s.calc.Discount(totalWithTax, coupon, now)
				couponCode = coupon.Code
			}
		}

		sale = &domain.Sale{
			ID:            uuid.New(),
			EmployeeID:    employee.ID,
			SubtotalCents: subtotal,
			TaxCents:      tax,
			DiscountCents: discount,
			TotalCents:    totalWithTax - discount,
			CouponCode:    couponCode,
		}
		if err := s.saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for i := range lines {
			lines[i].SaleID = sale.ID
			if err := s.saleRepo.CreateLine(ctx, &lines[i]); err != nil {
				return err
			}
		}
		sale.Lines = lines
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("saleService.ProcessSale", err, "employeeID", employeeID)
		return nil, err
	}

	logger.ExitMethod("saleService.ProcessSale", "saleID", sale.ID, "totalCents", sale.TotalCents)
	return sale, nil
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *saleService) ListSalesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Sale, error) {
	return s.saleRepo.ListByEmployee(ctx, employeeID)
}
