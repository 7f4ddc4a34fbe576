package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"closet-by-era/internal/infra"
	"closet-by-era/internal/pkg/pgconv"
	"closet-by-era/internal/usecase/queries"
)

const couponColumns = `id, code, discount_type, discount_value, min_order_amount,
	max_uses, uses_count, ends_at, is_active, created_at, updated_at`

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	// Codes are stored upper-cased; normalizing here keeps lookups
	// case-insensitive without an expression index.
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = UPPER(TRIM($1))`

	view, err := scanCouponView(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return view, nil
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	view, err := scanCouponView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return view, nil
}

func (r *CouponReadStore) List(ctx context.Context, filters queries.CouponFilters, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int) ([]queries.CouponView, error) {
	var (
		conds []string
		args  []any
	)
	if filters.IsActive != nil {
		args = append(args, *filters.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, strings.ToUpper(filters.Search))
		conds = append(conds, fmt.Sprintf("code LIKE '%%' || $%d || '%%'", len(args)))
	}
	if afterCreatedAt != nil && afterID != nil {
		args = append(args, *afterCreatedAt, *afterID)
		conds = append(conds, fmt.Sprintf("(created_at, id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + couponColumns + ` FROM coupons`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []queries.CouponView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCouponView(row rowScanner) (*queries.CouponView, error) {
	var v queries.CouponView
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.DiscountType,
		&v.DiscountValue,
		&v.MinOrderAmount,
		&v.MaxUses,
		&v.UsesCount,
		&v.EndsAt,
		&v.IsActive,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
