package writerepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"closet-by-era/internal/domain/coupon"
	"closet-by-era/internal/infra"
	"closet-by-era/internal/pkg/pgconv"
)

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) Insert(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error) {
	query := `
		INSERT INTO coupons (id, code, discount_type, discount_value, min_order_amount, max_uses, ends_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		c.ID(),
		c.Code().String(),
		c.Discount().Type().String(),
		c.Discount().Value(),
		c.MinOrderAmount(),
		c.MaxUses(),
		c.EndsAt(),
		c.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	query := `
		UPDATE coupons
		SET discount_type = $2, discount_value = $3, min_order_amount = $4,
			max_uses = $5, ends_at = $6, is_active = $7, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		c.ID(),
		c.Discount().Type().String(),
		c.Discount().Value(),
		c.MinOrderAmount(),
		c.MaxUses(),
		c.EndsAt(),
		c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) ResetUsage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE coupons SET uses_count = 0, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to reset coupon usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// IncrementUsage consumes one use atomically. The usage cap lives in the
// UPDATE predicate, so two concurrent redemptions of the last remaining
// use cannot both succeed: one sees zero rows and reports KindNotFound.
func (r *CouponRepository) IncrementUsage(ctx context.Context, code string) (int32, error) {
	query := `
		UPDATE coupons
		SET uses_count = uses_count + 1, updated_at = now()
		WHERE code = UPPER(TRIM($1))
			AND (max_uses IS NULL OR uses_count < max_uses)
		RETURNING uses_count`

	var usesCount int32
	if err := r.pool.QueryRow(ctx, query, code).Scan(&usesCount); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("coupon not redeemable", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return usesCount, nil
}
