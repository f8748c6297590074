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

type returnRepository struct {
	db *sql.DB
}

func NewReturnRepository(db *sql.DB) repository.ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, ret *domain.Return) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	ret.CreatedOn = time.Now()
	query := `INSERT INTO returns (id, rental_id, employee_id, total_refund_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, ret.ID, ret.RentalID, ret.EmployeeID, ret.TotalRefundCents, ret.CreatedOn)
	return err
}

func (r *returnRepository) CreateLine(ctx context.Context, line *domain.ReturnLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	query := `INSERT INTO return_lines (id, return_id, rental_line_id, quantity, refund_cents)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, line.ID, line.ReturnID, line.RentalLineID, line.Quantity, line.RefundCents)
	return err
}

func (r *returnRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Return, error) {
	ret := &domain.Return{}
	query := `SELECT id, rental_id, employee_id, total_refund_cents, created_on FROM returns WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&ret.ID, &ret.RentalID, &ret.EmployeeID, &ret.TotalRefundCents, &ret.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("return %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	ret.Lines, err = r.ListLines(ctx, ret.ID)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (r *returnRepository) ListLines(ctx context.Context, returnID uuid.UUID) ([]domain.ReturnLine, error) {
	query := `SELECT id, return_id, rental_line_id, quantity, refund_cents FROM return_lines WHERE return_id = $1 ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, returnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.ReturnLine
	for rows.Next() {
		var ln domain.ReturnLine
		if err := rows.Scan(&ln.ID, &ln.ReturnID, &ln.RentalLineID, &ln.Quantity, &ln.RefundCents); err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}
