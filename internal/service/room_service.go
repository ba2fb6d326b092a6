package service

import (
	"context"
	"errors"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/repository"

	"github.com/google/uuid"
)

type RoomService interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (*dto.RoomResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	// Board returns every room with its open occupancy attached — the
	// dashboard's main view.
	Board(ctx context.Context) ([]dto.RoomResponse, error)
}

type roomService struct {
	rooms       repository.RoomRepository
	occupancies repository.OccupancyRepository
}

func NewRoomService(rooms repository.RoomRepository, occupancies repository.OccupancyRepository) RoomService {
	return &roomService{rooms: rooms, occupancies: occupancies}
}

func (s *roomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &model.Room{
		Number: req.Number,
		Type:   req.Type,
		Status: "available",
		Notes:  req.Notes,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, errors.New("room number already exists")
	}
	resp := roomToResponse(room, nil)
	return &resp, nil
}

func (s *roomService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("room not found")
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Notes != nil {
		room.Notes = req.Notes
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	resp := roomToResponse(room, nil)
	return &resp, nil
}

func (s *roomService) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return errors.New("room not found")
	}
	// Occupied is owned by the occupancy lifecycle, never set by hand
	if room.Status == "occupied" {
		return errors.New("room is occupied; check the guest out first")
	}
	return s.rooms.SetStatus(ctx, id, status)
}

func (s *roomService) Board(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.occupancies.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	openByRoom := make(map[uuid.UUID]*model.Occupancy, len(open))
	for i := range open {
		openByRoom[open[i].RoomID] = &open[i]
	}

	out := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		out[i] = roomToResponse(&rooms[i], openByRoom[rooms[i].ID])
	}
	return out, nil
}

func roomToResponse(room *model.Room, open *model.Occupancy) dto.RoomResponse {
	resp := dto.RoomResponse{
		ID:     room.ID.String(),
		Number: room.Number,
		Type:   room.Type,
		Status: room.Status,
		Notes:  room.Notes,
	}
	if open != nil {
		id := open.ID.String()
		checkIn := open.CheckIn.Format("2006-01-02T15:04:05Z07:00")
		resp.OccupancyID = &id
		resp.CheckIn = &checkIn
	}
	return resp
}
