package repository

import (
	"context"
	"time"

	"motelpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Consumptions are immutable — no Update/Delete on the interface.
type ConsumptionRepository interface {
	Create(ctx context.Context, c *model.Consumption) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Consumption, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Consumption, error)
}

type consumptionRepo struct{ db *gorm.DB }

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository { return &consumptionRepo{db: db} }

func (r *consumptionRepo) Create(ctx context.Context, c *model.Consumption) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *consumptionRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Consumption, error) {
	var items []model.Consumption
	err := r.db.WithContext(ctx).Preload("Product").
		Where("shift_session_id = ?", sessionID).
		Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *consumptionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Consumption, error) {
	var items []model.Consumption
	err := r.db.WithContext(ctx).Preload("Product").
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at ASC").Find(&items).Error
	return items, err
}
