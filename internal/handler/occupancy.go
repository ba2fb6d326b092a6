package handler

import (
	"net/http"

	"motelpos/internal/apierror"
	"motelpos/internal/dto"
	"motelpos/internal/service"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct{ svc service.OccupancyService }

func NewOccupancyHandler(svc service.OccupancyService) *OccupancyHandler {
	return &OccupancyHandler{svc: svc}
}

// CheckIn godoc
// @Summary Check a guest into a room
// @Tags occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CheckInRequest true "Check-in data"
// @Success 201 {object} dto.OccupancyResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/occupancies/check-in [post]
func (h *OccupancyHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CheckIn(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CheckOut godoc
// @Summary Check a guest out, pricing the stay through the tier table
// @Tags occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CheckOutRequest true "Check-out data"
// @Success 200 {object} dto.OccupancyResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/occupancies/check-out [post]
func (h *OccupancyHandler) CheckOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CheckOut(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Quote prices a prospective stay without touching any room.
func (h *OccupancyHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Quote(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Presets returns the quick-duration buttons for the front desk UI.
func (h *OccupancyHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Presets())
}

func (h *OccupancyHandler) ListOpen(c *gin.Context) {
	resp, err := h.svc.ListOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list open stays"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
