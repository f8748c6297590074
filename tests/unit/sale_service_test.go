package unit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pos-backend/internal/domain"
	"pos-backend/internal/pricing"
	"pos-backend/internal/service"
)

func newSaleService(saleRepo *MockSaleRepo, itemRepo *MockItemRepo, employeeRepo *MockEmployeeRepo, couponRepo *MockCouponRepo) service.SaleService {
	return service.NewSaleService(
		PassthroughTxManager{},
		saleRepo,
		itemRepo,
		employeeRepo,
		couponRepo,
		pricing.NewCalculator(pricing.DefaultTaxRateBasisPoints),
	)
}

func TestSaleService_ProcessSale(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	employee := &domain.Employee{ID: employeeID, Username: "clerk"}

	t.Run("Success", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 100, Name: "Soda", PriceCents: 500, Quantity: 10}

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(100)).Return(item, nil)
		itemRepo.On("UpdateQuantity", ctx, item.ID, int32(6)).Return(nil)
		saleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Sale")).Return(nil)
		saleRepo.On("CreateLine", ctx, mock.AnythingOfType("*domain.SaleLine")).Return(nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items: []domain.SaleLineRequest{{ItemID: 100, Quantity: 4}},
		})
		assert.NoError(t, err)
		assert.NotNil(t, sale)
		assert.Equal(t, int64(2000), sale.SubtotalCents)
		assert.Equal(t, int64(120), sale.TaxCents) // 6% of 2000
		assert.Equal(t, int64(0), sale.DiscountCents)
		assert.Equal(t, int64(2120), sale.TotalCents)
		assert.Len(t, sale.Lines, 1)
		assert.Equal(t, int64(500), sale.Lines[0].UnitPriceCents)
		itemRepo.AssertCalled(t, "UpdateQuantity", ctx, item.ID, int32(6))
	})

	t.Run("Valid Coupon Applies To Tax-Inclusive Total", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 200, Name: "Movie", PriceCents: 1000, Quantity: 8}
		coupon := &domain.Coupon{ID: uuid.New(), Code: "SAVE10", DiscountPercent: 10, Active: true}

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(200)).Return(item, nil)
		itemRepo.On("UpdateQuantity", ctx, item.ID, int32(4)).Return(nil)
		couponRepo.On("GetActiveByCode", ctx, "SAVE10").Return(coupon, nil)
		saleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Sale")).Return(nil)
		saleRepo.On("CreateLine", ctx, mock.AnythingOfType("*domain.SaleLine")).Return(nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items:      []domain.SaleLineRequest{{ItemID: 200, Quantity: 4}},
			CouponCode: "SAVE10",
		})
		assert.NoError(t, err)
		// 4000 subtotal + 240 tax = 4240, 10% of 4240 = 424
		assert.Equal(t, int64(4000), sale.SubtotalCents)
		assert.Equal(t, int64(240), sale.TaxCents)
		assert.Equal(t, int64(424), sale.DiscountCents)
		assert.Equal(t, int64(3816), sale.TotalCents)
		assert.Equal(t, "SAVE10", sale.CouponCode)
	})

	t.Run("Oversized Coupon Clamps At Free, Never Negative", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 250, Name: "Candy", PriceCents: 500, Quantity: 9}
		coupon := &domain.Coupon{ID: uuid.New(), Code: "SAVE150", DiscountPercent: 150, Active: true}

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(250)).Return(item, nil)
		itemRepo.On("UpdateQuantity", ctx, item.ID, int32(7)).Return(nil)
		couponRepo.On("GetActiveByCode", ctx, "SAVE150").Return(coupon, nil)
		saleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Sale")).Return(nil)
		saleRepo.On("CreateLine", ctx, mock.AnythingOfType("*domain.SaleLine")).Return(nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items:      []domain.SaleLineRequest{{ItemID: 250, Quantity: 2}},
			CouponCode: "SAVE150",
		})
		assert.NoError(t, err)
		// 1000 subtotal + 60 tax = 1060; 150% would be 1590, clamped to 1060
		assert.Equal(t, int64(1060), sale.DiscountCents)
		assert.Equal(t, int64(0), sale.TotalCents)
	})

	t.Run("Unknown Coupon Is Zero Discount", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 300, Name: "Chips", PriceCents: 250, Quantity: 5}

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(300)).Return(item, nil)
		itemRepo.On("UpdateQuantity", ctx, item.ID, int32(4)).Return(nil)
		couponRepo.On("GetActiveByCode", ctx, "NOPE").Return(nil, domain.ErrNotFound)
		saleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Sale")).Return(nil)
		saleRepo.On("CreateLine", ctx, mock.AnythingOfType("*domain.SaleLine")).Return(nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items:      []domain.SaleLineRequest{{ItemID: 300, Quantity: 1}},
			CouponCode: "NOPE",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), sale.DiscountCents)
		assert.Empty(t, sale.CouponCode)
	})

	t.Run("Insufficient Stock", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 100, Name: "Soda", PriceCents: 500, Quantity: 2}

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(100)).Return(item, nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items: []domain.SaleLineRequest{{ItemID: 100, Quantity: 3}},
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Nil(t, sale)
		itemRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
		saleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Repeated Item Sees Reduced Stock", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 100, Name: "Soda", PriceCents: 500, Quantity: 5}

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(100)).Return(item, nil)
		itemRepo.On("UpdateQuantity", ctx, item.ID, mock.AnythingOfType("int32")).
			Run(func(args mock.Arguments) {
				item.Quantity = args.Get(2).(int32)
			}).Return(nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items: []domain.SaleLineRequest{
				{ItemID: 100, Quantity: 3},
				{ItemID: 100, Quantity: 3},
			},
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Nil(t, sale)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)
		itemRepo.On("GetByItemIDForUpdate", ctx, int32(999)).Return(nil, domain.ErrNotFound)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items: []domain.SaleLineRequest{{ItemID: 999, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, sale)
	})

	t.Run("Zero Quantity", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		employeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{
			Items: []domain.SaleLineRequest{{ItemID: 100, Quantity: 0}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Nil(t, sale)
	})

	t.Run("Empty Sale", func(t *testing.T) {
		saleRepo := new(MockSaleRepo)
		itemRepo := new(MockItemRepo)
		employeeRepo := new(MockEmployeeRepo)
		couponRepo := new(MockCouponRepo)
		svc := newSaleService(saleRepo, itemRepo, employeeRepo, couponRepo)

		sale, err := svc.ProcessSale(ctx, employeeID, domain.SaleRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.Nil(t, sale)
	})
}
