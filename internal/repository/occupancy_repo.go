package repository

import (
	"context"
	"time"

	"motelpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OccupancyRepository interface {
	Create(ctx context.Context, o *model.Occupancy) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Occupancy, error)
	FindOpenByRoom(ctx context.Context, roomID uuid.UUID) (*model.Occupancy, error)
	ListOpen(ctx context.Context) ([]model.Occupancy, error)
	// ListClosedBetween returns settled stays whose checkout falls in [from, to]
	ListClosedBetween(ctx context.Context, from, to time.Time) ([]model.Occupancy, error)
	Update(ctx context.Context, o *model.Occupancy) error
}

type occupancyRepo struct{ db *gorm.DB }

func NewOccupancyRepository(db *gorm.DB) OccupancyRepository { return &occupancyRepo{db: db} }

func (r *occupancyRepo) Create(ctx context.Context, o *model.Occupancy) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *occupancyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Occupancy, error) {
	var o model.Occupancy
	err := r.db.WithContext(ctx).Preload("Room").First(&o, id).Error
	return &o, err
}

func (r *occupancyRepo) FindOpenByRoom(ctx context.Context, roomID uuid.UUID) (*model.Occupancy, error) {
	var o model.Occupancy
	err := r.db.WithContext(ctx).Where("room_id = ? AND status = 'open'", roomID).First(&o).Error
	return &o, err
}

func (r *occupancyRepo) ListOpen(ctx context.Context) ([]model.Occupancy, error) {
	var stays []model.Occupancy
	err := r.db.WithContext(ctx).Preload("Room").Where("status = 'open'").Order("check_in ASC").Find(&stays).Error
	return stays, err
}

func (r *occupancyRepo) ListClosedBetween(ctx context.Context, from, to time.Time) ([]model.Occupancy, error) {
	var stays []model.Occupancy
	err := r.db.WithContext(ctx).Preload("Room").
		Where("status = 'closed' AND check_out BETWEEN ? AND ?", from, to).
		Order("check_out ASC").Find(&stays).Error
	return stays, err
}

func (r *occupancyRepo) Update(ctx context.Context, o *model.Occupancy) error {
	return r.db.WithContext(ctx).Save(o).Error
}
