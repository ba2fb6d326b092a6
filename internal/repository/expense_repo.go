package repository

import (
	"context"
	"time"

	"motelpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expenses are immutable — corrections create compensating entries elsewhere.
type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Expense, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Expense, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Where("shift_session_id = ?", sessionID).
		Order("created_at ASC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at ASC").Find(&expenses).Error
	return expenses, err
}
