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

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

const saleColumns = `id, employee_id, subtotal_cents, tax_cents, discount_cents, total_cents, coupon_code, created_on`

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedOn = time.Now()
	query := `INSERT INTO sales (id, employee_id, subtotal_cents, tax_cents, discount_cents, total_cents, coupon_code, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, sale.ID, sale.EmployeeID, sale.SubtotalCents, sale.TaxCents, sale.DiscountCents, sale.TotalCents, nullableString(sale.CouponCode), sale.CreatedOn)
	return err
}

func (r *saleRepository) CreateLine(ctx context.Context, line *domain.SaleLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	query := `INSERT INTO sale_lines (id, sale_id, item_id, quantity, unit_price_cents, subtotal_cents)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, line.ID, line.SaleID, line.ItemID, line.Quantity, line.UnitPriceCents, line.SubtotalCents)
	return err
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var couponCode sql.NullString
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&sale.ID, &sale.EmployeeID, &sale.SubtotalCents, &sale.TaxCents, &sale.DiscountCents, &sale.TotalCents, &couponCode, &sale.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sale %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	sale.CouponCode = couponCode.String

	sale.Lines, err = r.ListLines(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *saleRepository) ListLines(ctx context.Context, saleID uuid.UUID) ([]domain.SaleLine, error) {
	query := `SELECT id, sale_id, item_id, quantity, unit_price_cents, subtotal_cents
	          FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.SaleLine
	for rows.Next() {
		var ln domain.SaleLine
		if err := rows.Scan(&ln.ID, &ln.SaleID, &ln.ItemID, &ln.Quantity, &ln.UnitPriceCents, &ln.SubtotalCents); err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}

func (r *saleRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE employee_id = $1 ORDER BY created_on DESC`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		var couponCode sql.NullString
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.SubtotalCents, &s.TaxCents, &s.DiscountCents, &s.TotalCents, &couponCode, &s.CreatedOn); err != nil {
			return nil, err
		}
		s.CouponCode = couponCode.String
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
