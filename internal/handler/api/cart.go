package api

import (
	"errors"
	"log/slog"
	"net/http"

	"closet-by-era/internal/domain/coupon"
	reqdto "closet-by-era/internal/handler/dto/request"
	resdto "closet-by-era/internal/handler/dto/response"
	"closet-by-era/internal/handler/httperr"
	"closet-by-era/internal/usecase/commands"
	"closet-by-era/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the storefront coupon endpoints. A rejected code
// is a normal outcome, not an HTTP error: the response carries
// success=false plus the taxonomy code and its display message.
type CartHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCartHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Apply coupon
// @Description Validate a coupon code against the current cart total
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Apply coupon request"
// @Success 200 {object} resdto.ApplyCouponResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/coupon/apply [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.q.Validate(c.Request.Context(), req.Code, req.CartTotal)
	if err != nil {
		var rej *coupon.RejectionError
		if errors.As(err, &rej) {
			c.JSON(http.StatusOK, resdto.CouponRejected(string(rej.Reason), rej.Message))
			return
		}
		slog.Error("coupon validation failed", "code", req.Code, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CouponApplied(result.Coupon, result.DiscountAmount))
}

// @Summary Redeem coupon
// @Description Validate a coupon and consume one use at checkout
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCouponRequest true "Redeem coupon request"
// @Success 200 {object} resdto.RedeemCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /cart/coupon/redeem [post]
func (h *CartHandler) RedeemCoupon(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), req.Code, req.CartTotal)
	if err != nil {
		var rej *coupon.RejectionError
		if errors.As(err, &rej) {
			c.JSON(http.StatusOK, resdto.RedeemRejected(string(rej.Reason), rej.Message))
			return
		}
		slog.Error("coupon redemption failed", "code", req.Code, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CouponRedeemed(result.Coupon, result.DiscountAmount, result.UsesCount))
}
