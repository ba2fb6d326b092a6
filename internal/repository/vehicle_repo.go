package repository

import (
	"context"

	"motelpos/internal/model"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	CreateIncident(ctx context.Context, i *model.IncidentReport) error
	ListIncidents(ctx context.Context, limit int) ([]model.IncidentReport, error)
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&v).Error
	return &v, err
}

func (r *vehicleRepo) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) CreateIncident(ctx context.Context, i *model.IncidentReport) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *vehicleRepo) ListIncidents(ctx context.Context, limit int) ([]model.IncidentReport, error) {
	var incidents []model.IncidentReport
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&incidents).Error
	return incidents, err
}
