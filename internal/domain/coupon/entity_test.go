//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"closet-by-era/internal/domain/coupon"
	"closet-by-era/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "SAVE10", actual.Code().String())
		assert.Equal(t, coupon.DiscountPercentage, actual.Discount().Type())
		assert.Equal(t, float64(10), actual.Discount().Value())
		assert.True(t, actual.IsActive())
		assert.Equal(t, int32(0), actual.UsesCount())
	})

	t.Run("code is normalized to upper case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().WithCode("  save10  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", actual.Code().String())
	})

	t.Run("definition validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.CouponBuilder)
			reason coupon.Reason
		}{
			{
				name:   "empty code",
				mutate: func(b *builder.CouponBuilder) { b.WithCode("") },
				reason: coupon.ReasonInvalidCode,
			},
			{
				name:   "code with special characters",
				mutate: func(b *builder.CouponBuilder) { b.WithCode("SAVE-10!") },
				reason: coupon.ReasonInvalidCode,
			},
			{
				name:   "unknown discount type",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscount("bogus", 10) },
				reason: coupon.ReasonInvalidValue,
			},
			{
				name:   "zero discount value",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscount("fixed", 0) },
				reason: coupon.ReasonInvalidValue,
			},
			{
				name:   "negative discount value",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscount("fixed", -5) },
				reason: coupon.ReasonInvalidValue,
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscount("percentage", 101) },
				reason: coupon.ReasonInvalidValue,
			},
			{
				name:   "negative minimum order amount",
				mutate: func(b *builder.CouponBuilder) { b.WithMinOrderAmount(-1) },
				reason: coupon.ReasonInvalidMinimum,
			},
			{
				name:   "zero max uses",
				mutate: func(b *builder.CouponBuilder) { b.WithMaxUses(0) },
				reason: coupon.ReasonInvalidValue,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewCouponBuilder().With(tc.mutate).BuildDomain()
				require.Nil(t, actual)
				require.Error(t, err)

				var valErr *coupon.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, tc.reason, valErr.Reason)
			})
		}
	})

	t.Run("boundary discount values are accepted", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithDiscount("percentage", 100).BuildDomain()
		assert.NoError(t, err)

		_, err = builder.NewCouponBuilder().WithDiscount("fixed", 0.01).BuildDomain()
		assert.NoError(t, err)
	})
}

func TestCheckRedeemable(t *testing.T) {
	now := time.Now()

	check := func(t *testing.T, b *builder.CouponBuilder, cartTotal float64) *coupon.RejectionError {
		t.Helper()
		dom, err := b.BuildView().ToDomain()
		require.NoError(t, err)
		return dom.CheckRedeemable(now, cartTotal)
	}

	t.Run("valid coupon passes every check", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder(), 100)
		assert.Nil(t, rej)
	})

	t.Run("inactive coupon reports the generic invalid-code reason", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().Inactive(), 100)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonInvalidCode, rej.Reason)
		assert.Equal(t, "Invalid coupon code", rej.Message)
	})

	t.Run("expired coupon", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().Expired(), 100)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonExpired, rej.Reason)
		assert.Equal(t, "Coupon has expired", rej.Message)
	})

	t.Run("exhausted coupon", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().UsedUp(), 100)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonUsageLimitReached, rej.Reason)
	})

	t.Run("usage boundary: one use left still validates", func(t *testing.T) {
		b := builder.NewCouponBuilder().WithMaxUses(3).WithUsesCount(2)
		assert.Nil(t, check(t, b, 100))

		b = builder.NewCouponBuilder().WithMaxUses(3).WithUsesCount(3)
		rej := check(t, b, 100)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonUsageLimitReached, rej.Reason)
	})

	t.Run("below minimum carries the exact display message", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().WithMinOrderAmount(1000), 999.99)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonBelowMinimum, rej.Reason)
		assert.Equal(t, "Minimum order of 1000 required", rej.Message)
	})

	t.Run("cart total equal to minimum passes", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().WithMinOrderAmount(1000), 1000)
		assert.Nil(t, rej)
	})

	t.Run("check order: expiry wins over usage limit", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().Expired().UsedUp(), 100)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonExpired, rej.Reason)
	})

	t.Run("check order: usage limit wins over minimum", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().UsedUp().WithMinOrderAmount(1000), 10)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonUsageLimitReached, rej.Reason)
	})

	t.Run("check order: inactive wins over everything", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().Inactive().Expired().UsedUp().WithMinOrderAmount(1000), 10)
		require.NotNil(t, rej)
		assert.Equal(t, coupon.ReasonInvalidCode, rej.Reason)
	})

	t.Run("coupon ending in the future is still valid", func(t *testing.T) {
		rej := check(t, builder.NewCouponBuilder().WithEndsAt(now.Add(time.Hour)), 100)
		assert.Nil(t, rej)
	})
}

func TestDiscountAmount(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		dom, err := builder.NewCouponBuilder().WithDiscount("percentage", 10).BuildDomain()
		require.NoError(t, err)
		assert.InDelta(t, 25.0, dom.DiscountAmount(250), 1e-9)
	})

	t.Run("fixed discount", func(t *testing.T) {
		dom, err := builder.NewCouponBuilder().WithDiscount("fixed", 50).BuildDomain()
		require.NoError(t, err)
		assert.InDelta(t, 50.0, dom.DiscountAmount(250), 1e-9)
	})

	t.Run("fixed discount is capped at the cart total", func(t *testing.T) {
		dom, err := builder.NewCouponBuilder().WithDiscount("fixed", 50).BuildDomain()
		require.NoError(t, err)
		assert.InDelta(t, 30.0, dom.DiscountAmount(30), 1e-9)
	})
}
