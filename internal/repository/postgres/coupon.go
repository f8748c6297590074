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

type couponRepository struct {
	db *sql.DB
}

func NewCouponRepository(db *sql.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	coupon.CreatedOn = time.Now()
	query := `INSERT INTO coupons (id, code, discount_percent, active, valid_from, valid_to, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, coupon.ID, coupon.Code, coupon.DiscountPercent, coupon.Active, coupon.ValidFrom, coupon.ValidTo, coupon.CreatedOn)
	return err
}

func (r *couponRepository) GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon := &domain.Coupon{}
	query := `SELECT id, code, discount_percent, active, valid_from, valid_to, created_on
	          FROM coupons WHERE code = $1 AND active = true`
	err := q(ctx, r.db).QueryRowContext(ctx, query, code).Scan(&coupon.ID, &coupon.Code, &coupon.DiscountPercent, &coupon.Active, &coupon.ValidFrom, &coupon.ValidTo, &coupon.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("coupon %q: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return coupon, nil
}
