package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/repository"

	"github.com/google/uuid"
)

type VehicleService interface {
	Register(ctx context.Context, req dto.RegisterVehicleRequest) (*dto.VehicleResponse, error)
	List(ctx context.Context) ([]dto.VehicleResponse, error)
	ReportIncident(ctx context.Context, userID uuid.UUID, req dto.ReportIncidentRequest) (*dto.IncidentResponse, error)
	ListIncidents(ctx context.Context, limit int) ([]dto.IncidentResponse, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Register(ctx context.Context, req dto.RegisterVehicleRequest) (*dto.VehicleResponse, error) {
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if plate == "" {
		return nil, errors.New("plate is required")
	}
	if existing, err := s.repo.FindByPlate(ctx, plate); err == nil && existing != nil {
		return nil, fmt.Errorf("plate %s is already registered", plate)
	}

	v := &model.Vehicle{Plate: plate, Description: req.Description}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := vehicleToResponse(v)
	return &resp, nil
}

func (s *vehicleService) List(ctx context.Context) ([]dto.VehicleResponse, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		out[i] = vehicleToResponse(&vehicles[i])
	}
	return out, nil
}

func (s *vehicleService) ReportIncident(ctx context.Context, userID uuid.UUID, req dto.ReportIncidentRequest) (*dto.IncidentResponse, error) {
	incident := &model.IncidentReport{
		Description: req.Description,
		ReportedBy:  userID,
	}
	if req.VehicleID != nil {
		id, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicle_id: %w", err)
		}
		incident.VehicleID = &id
	}
	if req.RoomID != nil {
		id, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room_id: %w", err)
		}
		incident.RoomID = &id
	}

	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		return nil, err
	}
	resp := incidentToResponse(incident)
	return &resp, nil
}

func (s *vehicleService) ListIncidents(ctx context.Context, limit int) ([]dto.IncidentResponse, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	incidents, err := s.repo.ListIncidents(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IncidentResponse, len(incidents))
	for i := range incidents {
		out[i] = incidentToResponse(&incidents[i])
	}
	return out, nil
}

func vehicleToResponse(v *model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:          v.ID.String(),
		Plate:       v.Plate,
		Description: v.Description,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func incidentToResponse(i *model.IncidentReport) dto.IncidentResponse {
	resp := dto.IncidentResponse{
		ID:          i.ID.String(),
		Description: i.Description,
		ReportedBy:  i.ReportedBy.String(),
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
	}
	if i.VehicleID != nil {
		id := i.VehicleID.String()
		resp.VehicleID = &id
	}
	if i.RoomID != nil {
		id := i.RoomID.String()
		resp.RoomID = &id
	}
	return resp
}
