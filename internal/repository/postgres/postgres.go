package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"pos-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.TxManager
	repository.ItemRepository
	repository.CustomerRepository
	repository.EmployeeRepository
	repository.CouponRepository
	repository.SaleRepository
	repository.RentalRepository
	repository.ReturnRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		TxManager:          NewTxManager(db),
		ItemRepository:     NewItemRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		EmployeeRepository: NewEmployeeRepository(db),
		CouponRepository:   NewCouponRepository(db),
		SaleRepository:     NewSaleRepository(db),
		RentalRepository:   NewRentalRepository(db),
		ReturnRepository:   NewReturnRepository(db),
	}
}

type txKey struct{}

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) repository.TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// q returns the transaction bound to ctx when present, else the base DB.
func q(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
