package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
	"pos-backend/internal/logger"
	"pos-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, item_id, name, price_cents, quantity, created_on, updated_on`

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedOn = now
	item.UpdatedOn = now
	query := `INSERT INTO items (id, item_id, name, price_cents, quantity, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, item.ID, item.ItemID, item.Name, item.PriceCents, item.Quantity, item.CreatedOn, item.UpdatedOn)
	return err
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *itemRepository) GetByItemID(ctx context.Context, itemID int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`
	return r.scanOne(q(ctx, r.db).QueryRowContext(ctx, query, itemID))
}

func (r *itemRepository) GetByItemIDForUpdate(ctx context.Context, itemID int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1 FOR UPDATE`
	logger.DatabaseCall("SELECT", "items FOR UPDATE", "itemID", itemID)
	return r.scanOne(q(ctx, r.db).QueryRowContext(ctx, query, itemID))
}

func (r *itemRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *itemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) error {
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	query := `UPDATE items SET quantity = $1, updated_on = $2 WHERE id = $3`
	logger.DatabaseCall("UPDATE", "items SET quantity", "id", id, "quantity", quantity)
	result, err := q(ctx, r.db).ExecContext(ctx, query, quantity, time.Now(), id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "id", id)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	logger.DatabaseResult("UPDATE", rows, nil, "id", id, "quantity", quantity)
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedOn = time.Now()
	query := `UPDATE items SET name = $1, price_cents = $2, quantity = $3, updated_on = $4 WHERE id = $5`
	result, err := q(ctx, r.db).ExecContext(ctx, query, item.Name, item.PriceCents, item.Quantity, item.UpdatedOn, item.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY item_id`
	return r.scanMany(ctx, query)
}

func (r *itemRepository) SearchByName(ctx context.Context, name string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name ILIKE '%' || $1 || '%' ORDER BY item_id`
	return r.scanMany(ctx, query, name)
}

func (r *itemRepository) ListBelowThreshold(ctx context.Context, threshold int32) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity <= $1 ORDER BY quantity, item_id`
	return r.scanMany(ctx, query, threshold)
}

func (r *itemRepository) scanOne(row *sql.Row) (*domain.Item, error) {
	item := &domain.Item{}
	err := row.Scan(&item.ID, &item.ItemID, &item.Name, &item.PriceCents, &item.Quantity, &item.CreatedOn, &item.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) scanMany(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.ItemID, &item.Name, &item.PriceCents, &item.Quantity, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
