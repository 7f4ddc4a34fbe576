package api

import (
	"errors"
	"net/http"
	"strconv"

	"closet-by-era/internal/domain/coupon"
	reqdto "closet-by-era/internal/handler/dto/request"
	resdto "closet-by-era/internal/handler/dto/response"
	"closet-by-era/internal/handler/httperr"
	"closet-by-era/internal/usecase/commands"
	"closet-by-era/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Create coupon
// @Description Create a new discount coupon
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), commands.CreateCouponRequest{
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		EndsAt:         req.EndsAt,
		IsActive:       req.Active(),
	})
	if err != nil {
		abortCouponError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.CouponID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Get coupon
// @Description Get a coupon by ID
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Description List coupons with filters and keyset pagination
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param is_active query bool false "Filter by active status"
// @Param search query string false "Substring match on code"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var filters queries.CouponFilters
	if v := c.Query("is_active"); v != "" {
		if bv, err := strconv.ParseBool(v); err == nil {
			filters.IsActive = &bv
		}
	}
	filters.Search = c.Query("search")

	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "List coupons failed", nil)
		return
	}

	resp := gin.H{"coupons": resdto.FromCouponList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update coupon
// @Description Update a coupon (the code itself is immutable)
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Update coupon request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err = h.cmds.Update(c.Request.Context(), id, commands.UpdateCouponRequest{
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		EndsAt:         req.EndsAt,
		IsActive:       req.IsActive,
	})
	if err != nil {
		abortCouponError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Delete coupon
// @Description Delete a coupon permanently
// @Tags admin-coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortCouponError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset coupon usage
// @Description Reset a coupon's usage counter to zero
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id}/reset-usage [post]
func (h *CouponHandler) ResetUsage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.ResetUsage(c.Request.Context(), id); err != nil {
		abortCouponError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// abortCouponError maps command errors onto HTTP statuses: definition
// problems are 400, duplicate codes 409, missing coupons 404.
func abortCouponError(c *gin.Context, err error) {
	var valErr *coupon.ValidationError
	if errors.As(err, &valErr) {
		status := http.StatusBadRequest
		if valErr.Reason == coupon.ReasonDuplicateCode {
			status = http.StatusConflict
		}
		httperr.AbortWithReason(c, status, err, string(valErr.Reason), valErr.Message)
		return
	}
	if errors.Is(err, commands.ErrCouponNotFound) || errors.Is(err, queries.ErrCouponNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}
