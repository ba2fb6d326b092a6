package service

import (
	"context"
	"fmt"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/repository"
	"motelpos/internal/shiftcalc"

	"github.com/google/uuid"
)

type ExpenseService interface {
	Register(ctx context.Context, userID uuid.UUID, req dto.RegisterExpenseRequest) (*dto.ExpenseResponse, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]dto.ExpenseResponse, error)
}

type expenseService struct {
	expenses repository.ExpenseRepository
	shifts   ShiftService
}

func NewExpenseService(expenses repository.ExpenseRepository, shifts ShiftService) ExpenseService {
	return &expenseService{expenses: expenses, shifts: shifts}
}

func (s *expenseService) Register(ctx context.Context, userID uuid.UUID, req dto.RegisterExpenseRequest) (*dto.ExpenseResponse, error) {
	sessionID, err := uuid.Parse(req.ShiftSessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid shift_session_id: %w", err)
	}
	if err := s.shifts.RequireOpen(ctx, sessionID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, shiftcalc.ErrInvalidAmount
	}

	e := &model.Expense{
		ShiftSessionID: sessionID,
		Concept:        req.Concept,
		Amount:         req.Amount,
		RegisteredBy:   userID,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := expenseToResponse(e)
	return &resp, nil
}

func (s *expenseService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenses.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = expenseToResponse(&expenses[i])
	}
	return out, nil
}

func expenseToResponse(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:        e.ID.String(),
		Concept:   e.Concept,
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
