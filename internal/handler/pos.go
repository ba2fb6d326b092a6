package handler

import (
	"net/http"
	"strconv"

	"motelpos/internal/apierror"
	"motelpos/internal/dto"
	"motelpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type POSHandler struct{ svc service.POSService }

func NewPOSHandler(svc service.POSService) *POSHandler { return &POSHandler{svc: svc} }

func (h *POSHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *POSHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *POSHandler) DeactivateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.DeactivateProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *POSHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *POSHandler) ListProducts(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))
	resp, err := h.svc.ListProducts(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterConsumption godoc
// @Summary Charge a product sale to a room or an employee
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegisterConsumptionRequest true "Sale data"
// @Success 201 {object} dto.ConsumptionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/consumptions [post]
func (h *POSHandler) RegisterConsumption(c *gin.Context) {
	var req dto.RegisterConsumptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterConsumption(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *POSHandler) ListConsumptions(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid session_id"))
		return
	}
	resp, err := h.svc.ListConsumptions(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list consumptions"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
