package queries

import (
	"context"
	"time"

	"closet-by-era/internal/domain/coupon"
	"closet-by-era/internal/infra"
	"closet-by-era/internal/pkg/clock"
	"closet-by-era/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponFilters struct {
	IsActive *bool
	Search   string // substring match on code
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int) ([]CouponView, error)
}

// CouponValidationResult is a successful validation: the unmodified
// coupon plus the discount it would grant for the given cart total.
type CouponValidationResult struct {
	Coupon         *CouponView
	DiscountAmount float64
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, cursor *Cursor, limit int) ([]CouponView, *Cursor, error)
	// Validate decides whether a code applies to a cart subtotal. A
	// failed check returns a *coupon.RejectionError whose message is
	// display-ready; the coupon itself is never mutated here.
	Validate(ctx context.Context, code string, cartTotal float64) (*CouponValidationResult, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{readStore: readStore, clock: clk}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, filters CouponFilters, cursor *Cursor, limit int) ([]CouponView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		afterCreatedAt *time.Time
		afterID        *uuid.UUID
	)
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Wrap(err, "invalid coupon list cursor")
		}
		afterCreatedAt, afterID = &t, &id
	}

	// Fetch one extra row to detect whether a next page exists.
	items, err := q.readStore.List(ctx, filters, afterCreatedAt, afterID, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, cartTotal float64) (*CouponValidationResult, error) {
	// Missing and inactive codes report the same generic rejection so
	// the endpoint cannot be used to enumerate codes.
	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.NewRejectionError(coupon.ReasonInvalidCode, "Invalid coupon code")
		}
		return nil, err
	}

	dom, err := view.ToDomain()
	if err != nil {
		return nil, errs.Wrap(err, "corrupted coupon row")
	}

	if rej := dom.CheckRedeemable(q.clock.Now(), cartTotal); rej != nil {
		return nil, rej
	}
	return &CouponValidationResult{
		Coupon:         view,
		DiscountAmount: dom.DiscountAmount(cartTotal),
	}, nil
}
