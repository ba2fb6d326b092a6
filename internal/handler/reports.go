package handler

import (
	"net/http"
	"strconv"

	"motelpos/internal/apierror"
	"motelpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// ShiftReport godoc
// @Summary Full shift report: reconciliation, stays with excess time, sales, expenses
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift session ID"
// @Success 200 {object} dto.ShiftReportResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/reports/shifts/{id} [get]
func (h *ReportsHandler) ShiftReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.ShiftReport(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History returns a paginated list of closed shift sessions.
func (h *ReportsHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	resp, err := h.svc.History(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp.Sessions, "total": resp.Total, "page": page, "limit": limit})
}
