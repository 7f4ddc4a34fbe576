//go:build e2e

package coupon_test

import (
	"net/http"
	"testing"

	"closet-by-era/internal/domain/user"
	"closet-by-era/internal/handler/dto/response"
	"closet-by-era/tests/common/authtest"
	"closet-by-era/tests/common/builder"
	"closet-by-era/tests/common/httptest"
	"closet-by-era/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminCouponsURL = "/api/admin/coupons"
	applyURL        = "/api/cart/coupon/apply"
	redeemURL       = "/api/cart/coupon/redeem"
)

type CouponSuite struct {
	e2e.SharedSuite
}

func (s *CouponSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CouponSuite))
}

func (s *CouponSuite) createCoupon(token string, b *builder.CouponBuilder) response.CouponResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCouponsURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CouponResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	return created
}

// =============================================================================
// TestCouponLifecycle - create, apply, redeem to exhaustion
// =============================================================================

func (s *CouponSuite) TestCouponLifecycle() {
	s.Run("Normal case: coupon can be applied and redeemed until the cap", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))

		created := s.createCoupon(adminToken, builder.NewCouponBuilder().
			WithCode("SUMMER10").
			WithDiscount("percentage", 10).
			WithMinOrderAmount(50).
			WithMaxUses(2))
		require.Equal(t, "SUMMER10", created.Code)
		require.Equal(t, int32(0), created.UsesCount)

		// Anonymous apply succeeds and reports the discount
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			map[string]any{"code": "summer10", "cart_total": 100.0}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var applied response.ApplyCouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &applied))
		require.True(t, applied.Success)
		require.NotNil(t, applied.DiscountAmount)
		require.InDelta(t, 10.0, *applied.DiscountAmount, 1e-9)

		// Below the minimum order the coupon is rejected with the exact message
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			map[string]any{"code": "SUMMER10", "cart_total": 49.99}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rejected response.ApplyCouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))
		require.False(t, rejected.Success)
		require.Equal(t, "BELOW_MINIMUM", rejected.Code)
		require.Equal(t, "Minimum order of 50 required", rejected.Error)

		// Redeem twice, then the cap kicks in
		for i := int32(1); i <= 2; i++ {
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
				map[string]any{"code": "SUMMER10", "cart_total": 100.0}, customerToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var redeemed response.RedeemCouponResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &redeemed))
			require.True(t, redeemed.Success)
			require.NotNil(t, redeemed.UsesCount)
			require.Equal(t, i, *redeemed.UsesCount)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"code": "SUMMER10", "cart_total": 100.0}, customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var exhausted response.RedeemCouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &exhausted))
		require.False(t, exhausted.Success)
		require.Equal(t, "USAGE_LIMIT_REACHED", exhausted.Code)
	})

	s.Run("Error case: unknown code reports INVALID_CODE", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			map[string]any{"code": "NOSUCHCODE", "cart_total": 100.0}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rejected response.ApplyCouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))
		require.False(t, rejected.Success)
		require.Equal(t, "INVALID_CODE", rejected.Code)
		require.Equal(t, "Invalid coupon code", rejected.Error)
	})

	s.Run("Error case: redeem requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"code": "SUMMER10", "cart_total": 100.0}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCouponAdmin - admin CRUD and role boundaries
// =============================================================================

func (s *CouponSuite) TestCouponAdmin() {
	s.Run("Error case: duplicate code returns 409 Conflict", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		s.createCoupon(adminToken, builder.NewCouponBuilder().WithCode("TWICE"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCouponsURL,
			builder.NewCouponBuilder().WithCode("twice").BuildCreateRequestDTO(), adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: customers cannot reach admin endpoints", func() {
		t := s.T()

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminCouponsURL, nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: delete and reset-usage need super_admin", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		superToken := authtest.CreateAndLogin(t, s.DB, s.Router, "root@example.com", string(user.RoleSuperAdmin))

		created := s.createCoupon(adminToken, builder.NewCouponBuilder().WithCode("GUARDED"))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminCouponsURL+"/"+created.ID.String(), nil, adminToken)
		require.Equal(t, http.StatusForbidden, w.Code, "a plain admin cannot delete")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminCouponsURL+"/"+created.ID.String(), nil, superToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Normal case: reset-usage makes an exhausted coupon redeemable again", func() {
		t := s.T()

		superToken := authtest.CreateAndLogin(t, s.DB, s.Router, "root@example.com", string(user.RoleSuperAdmin))
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))

		created := s.createCoupon(superToken, builder.NewCouponBuilder().WithCode("ONESHOT").WithMaxUses(1))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"code": "ONESHOT", "cart_total": 100.0}, customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var redeemed response.RedeemCouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &redeemed))
		require.True(t, redeemed.Success)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminCouponsURL+"/"+created.ID.String()+"/reset-usage", nil, superToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var reset response.CouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reset))
		require.Equal(t, int32(0), reset.UsesCount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"code": "ONESHOT", "cart_total": 100.0}, customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &redeemed))
		require.True(t, redeemed.Success)
	})

	s.Run("Normal case: update keeps the code immutable", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		created := s.createCoupon(adminToken, builder.NewCouponBuilder().WithCode("KEEPME").WithDiscount("percentage", 10))

		updateBody := builder.NewCouponBuilder().WithCode("CHANGED").WithDiscount("fixed", 25).BuildUpdateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminCouponsURL+"/"+created.ID.String(), updateBody, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.CouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "KEEPME", updated.Code, "code never changes after creation")
		require.Equal(t, "fixed", updated.DiscountType)
		require.InDelta(t, 25.0, updated.DiscountValue, 1e-9)
	})
}
