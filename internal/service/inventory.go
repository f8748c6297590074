package service

import (
	"context"
	"fmt"

	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

type inventoryService struct {
	itemRepo repository.ItemRepository
}

func NewInventoryService(itemRepo repository.ItemRepository) InventoryService {
	return &inventoryService{itemRepo: itemRepo}
}

func (s *inventoryService) CreateItem(ctx context.Context, itemID int32, name string, priceCents int64, quantity int32) (*domain.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidRequest)
	}
	if priceCents < 0 || quantity < 0 {
		return nil, fmt.Errorf("%w: price and quantity must be non-negative", domain.ErrInvalidRequest)
	}

	item := &domain.Item{
		ItemID:     itemID,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) GetItemByItemID(ctx context.Context, itemID int32) (*domain.Item, error) {
	return s.itemRepo.GetByItemID(ctx, itemID)
}

func (s *inventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *inventoryService) SearchItems(ctx context.Context, name string) ([]domain.Item, error) {
	return s.itemRepo.SearchByName(ctx, name)
}

func (s *inventoryService) ListLowStockItems(ctx context.Context, threshold int32) ([]domain.Item, error) {
	return s.itemRepo.ListBelowThreshold(ctx, threshold)
}

func (s *inventoryService) UpdateItemQuantity(ctx context.Context, itemID int32, quantity int32) (*domain.Item, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative: %w", domain.ErrInvalidQuantity)
	}

	item, err := s.itemRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}
