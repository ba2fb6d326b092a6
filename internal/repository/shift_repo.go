package repository

import (
	"context"
	"time"

	"motelpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(ctx context.Context, s *model.ShiftSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ShiftSession, error)
	FindOpen(ctx context.Context) (*model.ShiftSession, error)
	Update(ctx context.Context, s *model.ShiftSession) error
	ListClosed(ctx context.Context, page, limit int) ([]model.ShiftSession, int64, error)
	// ListPendingSummaries feeds the retry cron: closed sessions whose AI
	// summary is still pending with a due retry time.
	ListPendingSummaries(ctx context.Context, now time.Time, limit int) ([]model.ShiftSession, error)
}

type shiftRepo struct{ db *gorm.DB }

func NewShiftRepository(db *gorm.DB) ShiftRepository { return &shiftRepo{db: db} }

func (r *shiftRepo) Create(ctx context.Context, s *model.ShiftSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shiftRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ShiftSession, error) {
	var s model.ShiftSession
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *shiftRepo) FindOpen(ctx context.Context) (*model.ShiftSession, error) {
	var s model.ShiftSession
	err := r.db.WithContext(ctx).Where("status = 'open'").First(&s).Error
	return &s, err
}

func (r *shiftRepo) Update(ctx context.Context, s *model.ShiftSession) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shiftRepo) ListClosed(ctx context.Context, page, limit int) ([]model.ShiftSession, int64, error) {
	var sessions []model.ShiftSession
	var total int64

	base := r.db.WithContext(ctx).Model(&model.ShiftSession{}).Where("status = 'closed'")
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("date DESC, opened_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&sessions).Error
	return sessions, total, err
}

func (r *shiftRepo) ListPendingSummaries(ctx context.Context, now time.Time, limit int) ([]model.ShiftSession, error) {
	var sessions []model.ShiftSession
	err := r.db.WithContext(ctx).
		Where("status = 'closed' AND summary_state = 'pending' AND next_summary_retry_at IS NOT NULL AND next_summary_retry_at <= ?", now).
		Order("next_summary_retry_at ASC").Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
