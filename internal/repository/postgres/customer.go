package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedOn = time.Now()
	query := `INSERT INTO customers (id, phone, created_on) VALUES ($1, $2, $3)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, customer.ID, customer.Phone, customer.CreatedOn)
	return err
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	customer := &domain.Customer{}
	query := `SELECT id, phone, created_on FROM customers WHERE phone = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, phone).Scan(&customer.ID, &customer.Phone, &customer.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}
