package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"closet-by-era/internal/domain/coupon"
	"closet-by-era/internal/infra"
	"closet-by-era/internal/pkg/clock"
	"closet-by-era/internal/pkg/errs"
	"closet-by-era/internal/usecase/queries"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CreateCouponRequest struct {
	Code           string
	DiscountType   string
	DiscountValue  float64
	MinOrderAmount float64
	MaxUses        *int32
	EndsAt         *time.Time
	IsActive       bool
}

type UpdateCouponRequest struct {
	DiscountType   string
	DiscountValue  float64
	MinOrderAmount float64
	MaxUses        *int32
	EndsAt         *time.Time
	IsActive       bool
}

type CreateCouponResult struct {
	CouponID uuid.UUID
}

type RedeemResult struct {
	Coupon         *queries.CouponView
	DiscountAmount float64
	UsesCount      int32
}

type CouponWriteRepository interface {
	Insert(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error)
	Update(ctx context.Context, c *coupon.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	ResetUsage(ctx context.Context, id uuid.UUID) error
	// IncrementUsage bumps uses_count only while it is below max_uses,
	// in one statement, and returns the new count. Zero rows affected
	// surfaces as KindNotFound.
	IncrementUsage(ctx context.Context, code string) (int32, error)
}

type CouponCommands interface {
	Create(ctx context.Context, req CreateCouponRequest) (*CreateCouponResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCouponRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	ResetUsage(ctx context.Context, id uuid.UUID) error
	// Redeem re-runs the validation checks and then consumes one use.
	Redeem(ctx context.Context, code string, cartTotal float64) (*RedeemResult, error)
}

type couponCommandsImpl struct {
	writeRepo CouponWriteRepository
	readStore queries.CouponReadStore
	clock     clock.Clock
}

func NewCouponCommands(writeRepo CouponWriteRepository, readStore queries.CouponReadStore, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		writeRepo: writeRepo,
		readStore: readStore,
		clock:     clk,
	}
}

func (c *couponCommandsImpl) Create(ctx context.Context, req CreateCouponRequest) (*CreateCouponResult, error) {
	dom, err := coupon.NewCoupon(
		uuid.New(),
		req.Code,
		req.DiscountType,
		req.DiscountValue,
		req.MinOrderAmount,
		req.MaxUses,
		req.EndsAt,
		req.IsActive,
	)
	if err != nil {
		return nil, err
	}

	id, err := c.writeRepo.Insert(ctx, dom)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, coupon.NewValidationError(coupon.ReasonDuplicateCode, "Coupon code already exists")
		}
		return nil, err
	}

	return &CreateCouponResult{CouponID: id}, nil
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateCouponRequest) error {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}

	// The code is immutable after creation; everything else is replaced
	// and re-validated through the aggregate constructor.
	dom, err := coupon.NewCoupon(
		current.ID,
		current.Code,
		req.DiscountType,
		req.DiscountValue,
		req.MinOrderAmount,
		req.MaxUses,
		req.EndsAt,
		req.IsActive,
	)
	if err != nil {
		return err
	}

	if err := c.writeRepo.Update(ctx, dom); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	return nil
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.writeRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	return nil
}

func (c *couponCommandsImpl) ResetUsage(ctx context.Context, id uuid.UUID) error {
	if err := c.writeRepo.ResetUsage(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	return nil
}

func (c *couponCommandsImpl) Redeem(ctx context.Context, code string, cartTotal float64) (*RedeemResult, error) {
	view, err := c.readStore.FindByCode(ctx, code)
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

	if rej := dom.CheckRedeemable(c.clock.Now(), cartTotal); rej != nil {
		return nil, rej
	}

	// The guarded increment closes the race between the check above and
	// concurrent redemptions: the cap is re-enforced inside the UPDATE
	// predicate, so the count can never overshoot max_uses.
	usesCount, err := c.writeRepo.IncrementUsage(ctx, dom.Code().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.NewRejectionError(coupon.ReasonUsageLimitReached, "Coupon usage limit reached")
		}
		return nil, err
	}

	view.UsesCount = usesCount
	return &RedeemResult{
		Coupon:         view,
		DiscountAmount: dom.DiscountAmount(cartTotal),
		UsesCount:      usesCount,
	}, nil
}
