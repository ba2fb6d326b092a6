package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/pricing"
	"motelpos/internal/repository"

	"github.com/google/uuid"
)

type OccupancyService interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (*dto.OccupancyResponse, error)
	CheckOut(ctx context.Context, req dto.CheckOutRequest) (*dto.OccupancyResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	Presets() dto.PresetsResponse
	ListOpen(ctx context.Context) ([]dto.OccupancyResponse, error)
}

type occupancyService struct {
	occupancies repository.OccupancyRepository
	rooms       repository.RoomRepository
	shifts      ShiftService
	engine      *pricing.Engine
	// now is swapped in tests to pin checkout times
	now func() time.Time
}

func NewOccupancyService(
	occupancies repository.OccupancyRepository,
	rooms repository.RoomRepository,
	shifts ShiftService,
	engine *pricing.Engine,
) OccupancyService {
	return &occupancyService{
		occupancies: occupancies,
		rooms:       rooms,
		shifts:      shifts,
		engine:      engine,
		now:         time.Now,
	}
}

// ── CheckIn ───────────────────────────────────────────────────────────────────
// Requires an open shift session; occupying a room flips its board status.

func (s *occupancyService) CheckIn(ctx context.Context, req dto.CheckInRequest) (*dto.OccupancyResponse, error) {
	sessionID, err := uuid.Parse(req.ShiftSessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid shift_session_id: %w", err)
	}
	if err := s.shifts.RequireOpen(ctx, sessionID); err != nil {
		return nil, err
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room_id: %w", err)
	}
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, errors.New("room not found")
	}
	if room.Status != "available" {
		return nil, fmt.Errorf("room %d is %s", room.Number, room.Status)
	}

	occ := &model.Occupancy{
		RoomID:         roomID,
		ShiftSessionID: sessionID,
		CheckIn:        s.now(),
		VehiclePlate:   req.VehiclePlate,
		Status:         "open",
	}
	if err := s.occupancies.Create(ctx, occ); err != nil {
		return nil, err
	}
	if err := s.rooms.SetStatus(ctx, roomID, "occupied"); err != nil {
		return nil, err
	}

	occ.Room = *room
	resp := occupancyToResponse(occ)
	return &resp, nil
}

// ── CheckOut ──────────────────────────────────────────────────────────────────
// Prices the stay through the tier table unless an override is supplied, then
// settles the occupancy and sends the room to cleaning.

func (s *occupancyService) CheckOut(ctx context.Context, req dto.CheckOutRequest) (*dto.OccupancyResponse, error) {
	occID, err := uuid.Parse(req.OccupancyID)
	if err != nil {
		return nil, fmt.Errorf("invalid occupancy_id: %w", err)
	}
	occ, err := s.occupancies.FindByID(ctx, occID)
	if err != nil {
		return nil, errors.New("occupancy not found")
	}
	if occ.Status != "open" {
		return nil, errors.New("occupancy is already closed")
	}

	checkOut := s.now()
	var price = occ.Price
	if req.OverridePrice != nil {
		if req.OverridePrice.IsNegative() {
			return nil, errors.New("override price cannot be negative")
		}
		price = req.OverridePrice
		occ.PriceOverriden = true
	} else {
		computed, err := s.engine.PriceFor(pricing.StayInterval{Start: occ.CheckIn, End: checkOut})
		if err != nil {
			return nil, err
		}
		price = &computed
	}

	occ.CheckOut = &checkOut
	occ.Price = price
	occ.Status = "closed"
	if err := s.occupancies.Update(ctx, occ); err != nil {
		return nil, err
	}
	if err := s.rooms.SetStatus(ctx, occ.RoomID, "cleaning"); err != nil {
		return nil, err
	}

	resp := occupancyToResponse(occ)
	return &resp, nil
}

// ── Quote ─────────────────────────────────────────────────────────────────────
// Prices a prospective stay from wall-clock entry without touching any room.

func (s *occupancyService) Quote(_ context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	start, err := time.Parse("15:04", req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := time.Parse("15:04", req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	interval := pricing.StayInterval{Start: start, End: end}
	hours, err := interval.Duration()
	if err != nil {
		return nil, err
	}
	price, err := s.engine.PriceFor(interval)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{Hours: hours, Price: price}, nil
}

func (s *occupancyService) Presets() dto.PresetsResponse {
	return dto.PresetsResponse{Hours: s.engine.QuickDurationPresets()}
}

func (s *occupancyService) ListOpen(ctx context.Context) ([]dto.OccupancyResponse, error) {
	stays, err := s.occupancies.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OccupancyResponse, len(stays))
	for i := range stays {
		out[i] = occupancyToResponse(&stays[i])
	}
	return out, nil
}

func occupancyToResponse(o *model.Occupancy) dto.OccupancyResponse {
	resp := dto.OccupancyResponse{
		ID:           o.ID.String(),
		RoomID:       o.RoomID.String(),
		RoomNumber:   o.Room.Number,
		CheckIn:      o.CheckIn.Format(time.RFC3339),
		Price:        o.Price,
		Overridden:   o.PriceOverriden,
		VehiclePlate: o.VehiclePlate,
		Status:       o.Status,
	}
	if o.CheckOut != nil {
		t := o.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &t
	}
	return resp
}
