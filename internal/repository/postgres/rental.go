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

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, employee_id, rental_date, due_date, subtotal_cents, tax_cents, created_on`
const rentalLineColumns = `id, rental_id, item_id, quantity, unit_price_cents, returned, return_date`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	if rental.ID == uuid.Nil {
		rental.ID = uuid.New()
	}
	now := time.Now()
	if rental.RentalDate.IsZero() {
		rental.RentalDate = now
	}
	rental.CreatedOn = now
	query := `INSERT INTO rentals (id, customer_id, employee_id, rental_date, due_date, subtotal_cents, tax_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, rental.ID, rental.CustomerID, rental.EmployeeID, rental.RentalDate, rental.DueDate, rental.SubtotalCents, rental.TaxCents, rental.CreatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rental := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&rental.ID, &rental.CustomerID, &rental.EmployeeID, &rental.RentalDate, &rental.DueDate, &rental.SubtotalCents, &rental.TaxCents, &rental.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rental.Lines, err = r.ListLines(ctx, rental.ID)
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY created_on DESC`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.EmployeeID, &rt.RentalDate, &rt.DueDate, &rt.SubtotalCents, &rt.TaxCents, &rt.CreatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rentals {
		lines, err := r.ListLines(ctx, rentals[i].ID)
		if err != nil {
			return nil, err
		}
		rentals[i].Lines = lines
	}
	return rentals, nil
}

func (r *rentalRepository) CreateLine(ctx context.Context, line *domain.RentalLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	query := `INSERT INTO rental_lines (id, rental_id, item_id, quantity, unit_price_cents, returned, return_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, line.ID, line.RentalID, line.ItemID, line.Quantity, line.UnitPriceCents, line.Returned, line.ReturnDate)
	return err
}

func (r *rentalRepository) GetLineByID(ctx context.Context, id uuid.UUID) (*domain.RentalLine, error) {
	line := &domain.RentalLine{}
	query := `SELECT ` + rentalLineColumns + ` FROM rental_lines WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&line.ID, &line.RentalID, &line.ItemID, &line.Quantity, &line.UnitPriceCents, &line.Returned, &line.ReturnDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental line %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *rentalRepository) UpdateLine(ctx context.Context, line *domain.RentalLine) error {
	query := `UPDATE rental_lines SET quantity = $1, returned = $2, return_date = $3 WHERE id = $4`
	logger.DatabaseCall("UPDATE", "rental_lines", "lineID", line.ID, "returned", line.Returned)
	result, err := q(ctx, r.db).ExecContext(ctx, query, line.Quantity, line.Returned, line.ReturnDate, line.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "lineID", line.ID)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("rental line %s: %w", line.ID, domain.ErrNotFound)
	}
	logger.DatabaseResult("UPDATE", rows, nil, "lineID", line.ID)
	return nil
}

func (r *rentalRepository) ListLines(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalLine, error) {
	query := `SELECT ` + rentalLineColumns + ` FROM rental_lines WHERE rental_id = $1 ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.RentalLine
	for rows.Next() {
		var ln domain.RentalLine
		if err := rows.Scan(&ln.ID, &ln.RentalID, &ln.ItemID, &ln.Quantity, &ln.UnitPriceCents, &ln.Returned, &ln.ReturnDate); err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}
