package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pos-backend/internal/domain"
	"pos-backend/internal/repository/postgres"
)

func TestItemRepository_GetByItemID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "item_id", "name", "price_cents", "quantity", "created_on", "updated_on"}).
			AddRow(id, int32(100), "Soda", int64(500), int32(12), time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM items WHERE item_id = \\$1").
			WithArgs(int32(100)).
			WillReturnRows(rows)

		item, err := repo.GetByItemID(ctx, 100)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, id, item.ID)
		assert.Equal(t, "Soda", item.Name)
		assert.Equal(t, int64(500), item.PriceCents)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM items WHERE item_id = \\$1").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "name", "price_cents", "quantity", "created_on", "updated_on"}))

		item, err := repo.GetByItemID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, item)
	})
}

func TestItemRepository_GetByItemIDForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "item_id", "name", "price_cents", "quantity", "created_on", "updated_on"}).
		AddRow(uuid.New(), int32(100), "Soda", int64(500), int32(12), time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM items WHERE item_id = \\$1 FOR UPDATE").
		WithArgs(int32(100)).
		WillReturnRows(rows)

	item, err := repo.GetByItemIDForUpdate(ctx, 100)
	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE items SET quantity = \\$1").
			WithArgs(int32(7), sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateQuantity(ctx, id, 7)
		assert.NoError(t, err)
	})

	t.Run("Negative Refused Without Query", func(t *testing.T) {
		err := repo.UpdateQuantity(ctx, id, -1)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Row", func(t *testing.T) {
		mock.ExpectExec("UPDATE items SET quantity = \\$1").
			WithArgs(int32(7), sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateQuantity(ctx, id, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	item := &domain.Item{ItemID: 100, Name: "Soda", PriceCents: 500, Quantity: 12}

	mock.ExpectExec("INSERT INTO items").
		WithArgs(sqlmock.AnyArg(), item.ItemID, item.Name, item.PriceCents, item.Quantity, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, item)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestItemRepository_ListBelowThreshold(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "item_id", "name", "price_cents", "quantity", "created_on", "updated_on"}).
		AddRow(uuid.New(), int32(100), "Soda", int64(500), int32(1), time.Now(), time.Now()).
		AddRow(uuid.New(), int32(200), "Chips", int64(250), int32(3), time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM items WHERE quantity <= \\$1").
		WithArgs(int32(5)).
		WillReturnRows(rows)

	items, err := repo.ListBelowThreshold(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int32(1), items[0].Quantity)
}
