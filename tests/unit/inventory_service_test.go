package unit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pos-backend/internal/domain"
	"pos-backend/internal/service"
)

func TestInventoryService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewInventoryService(itemRepo)

		itemRepo.On("Create", ctx, mock.AnythingOfType("*domain.Item")).Return(nil)

		item, err := svc.CreateItem(ctx, 100, "Soda", 500, 12)
		assert.NoError(t, err)
		assert.Equal(t, int32(100), item.ItemID)
		assert.Equal(t, int64(500), item.PriceCents)
		assert.Equal(t, int32(12), item.Quantity)
	})

	t.Run("Empty Name", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewInventoryService(itemRepo)

		item, err := svc.CreateItem(ctx, 100, "", 500, 12)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.Nil(t, item)
	})

	t.Run("Negative Price", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewInventoryService(itemRepo)

		item, err := svc.CreateItem(ctx, 100, "Soda", -1, 12)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.Nil(t, item)
	})
}

func TestInventoryService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewInventoryService(itemRepo)

		item := &domain.Item{ID: uuid.New(), ItemID: 100, Name: "Soda", Quantity: 12}
		itemRepo.On("GetByItemID", ctx, int32(100)).Return(item, nil)
		itemRepo.On("UpdateQuantity", ctx, item.ID, int32(7)).Return(nil)

		updated, err := svc.UpdateItemQuantity(ctx, 100, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), updated.Quantity)
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewInventoryService(itemRepo)

		updated, err := svc.UpdateItemQuantity(ctx, 100, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Nil(t, updated)
		itemRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewInventoryService(itemRepo)

		itemRepo.On("GetByItemID", ctx, int32(404)).Return(nil, domain.ErrNotFound)

		updated, err := svc.UpdateItemQuantity(ctx, 404, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, updated)
	})
}
