package api

import (
	"net/http"
	"strconv"

	resdto "closet-by-era/internal/handler/dto/response"
	"closet-by-era/internal/handler/httperr"
	"closet-by-era/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	q queries.CustomerQueries
}

func NewCustomerHandler(q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{q: q}
}

// @Summary List customers
// @Description List customers with order stats, search, and keyset pagination
// @Tags admin-customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name or email"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /admin/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")
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

	items, next, err := h.q.List(c.Request.Context(), search, cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "List customers failed", nil)
		return
	}

	resp := gin.H{"customers": resdto.FromCustomerList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
