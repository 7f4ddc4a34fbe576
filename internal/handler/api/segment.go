package api

import (
	"net/http"

	resdto "closet-by-era/internal/handler/dto/response"
	"closet-by-era/internal/handler/httperr"
	"closet-by-era/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SegmentHandler struct {
	q queries.SegmentationQueries
}

func NewSegmentHandler(q queries.SegmentationQueries) *SegmentHandler {
	return &SegmentHandler{q: q}
}

// @Summary Customer segmentation report
// @Description Compute the RFM segmentation report over all customers
// @Tags admin-analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SegmentReportResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/analytics/segments [get]
func (h *SegmentHandler) Segments(c *gin.Context) {
	report, err := h.q.AnalyzeSegments(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Segmentation failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSegmentReport(report))
}
