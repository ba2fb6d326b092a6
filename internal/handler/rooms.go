package handler

import (
	"net/http"

	"motelpos/internal/apierror"
	"motelpos/internal/dto"
	"motelpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomsHandler struct{ svc service.RoomService }

func NewRoomsHandler(svc service.RoomService) *RoomsHandler { return &RoomsHandler{svc: svc} }

// Board godoc
// @Summary Room board with live occupancy state
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RoomResponse
// @Router /v1/rooms [get]
func (h *RoomsHandler) Board(c *gin.Context) {
	resp, err := h.svc.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load room board"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomsHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RoomsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetStatus flips a room between available / cleaning / maintenance.
// Occupied is owned by the check-in/check-out lifecycle.
func (h *RoomsHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.SetRoomStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
