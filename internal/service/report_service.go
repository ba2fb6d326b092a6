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
	"motelpos/internal/shiftcalc"

	"github.com/google/uuid"
)

type ReportService interface {
	ShiftReport(ctx context.Context, sessionID uuid.UUID) (*dto.ShiftReportResponse, error)
	History(ctx context.Context, page, limit int) (*dto.ShiftHistoryResponse, error)
}

type reportService struct {
	shifts       repository.ShiftRepository
	occupancies  repository.OccupancyRepository
	consumptions repository.ConsumptionRepository
	expenses     repository.ExpenseRepository
	engine       *pricing.Engine
}

func NewReportService(
	shifts repository.ShiftRepository,
	occupancies repository.OccupancyRepository,
	consumptions repository.ConsumptionRepository,
	expenses repository.ExpenseRepository,
	engine *pricing.Engine,
) ReportService {
	return &reportService{
		shifts:       shifts,
		occupancies:  occupancies,
		consumptions: consumptions,
		expenses:     expenses,
		engine:       engine,
	}
}

// ShiftReport assembles the full picture of a closed session: the frozen
// reconciliation plus every stay, sale and expense that fell inside its
// window. Each stay carries the excess-time heuristic so supervisors can
// spot guests who stayed past what they paid for.
func (s *reportService) ShiftReport(ctx context.Context, sessionID uuid.UUID) (*dto.ShiftReportResponse, error) {
	session, err := s.shifts.FindByID(ctx, sessionID)
	if err != nil {
		return nil, errors.New("shift session not found")
	}
	label, err := shiftcalc.ParseLabel(session.Shift)
	if err != nil {
		return nil, fmt.Errorf("corrupt session shift label: %w", err)
	}
	window := shiftcalc.WindowFor(session.Date, label)

	stays, err := s.occupancies.ListClosedBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.StayReportEntry, 0, len(stays))
	for i := range stays {
		entries = append(entries, s.stayEntry(&stays[i]))
	}

	consumptions, err := s.consumptions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	consumptionResponses := make([]dto.ConsumptionResponse, len(consumptions))
	for i := range consumptions {
		consumptionResponses[i] = consumptionToResponse(&consumptions[i])
	}

	expenses, err := s.expenses.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	expenseResponses := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		expenseResponses[i] = expenseToResponse(&expenses[i])
	}

	return &dto.ShiftReportResponse{
		Session:      sessionToResponse(session, nil),
		Stays:        entries,
		Consumptions: consumptionResponses,
		Expenses:     expenseResponses,
	}, nil
}

func (s *reportService) History(ctx context.Context, page, limit int) (*dto.ShiftHistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sessions, total, err := s.shifts.ListClosed(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShiftSessionResponse, len(sessions))
	for i := range sessions {
		out[i] = sessionToResponse(&sessions[i], nil)
	}
	return &dto.ShiftHistoryResponse{Sessions: out, Total: total}, nil
}

func (s *reportService) stayEntry(o *model.Occupancy) dto.StayReportEntry {
	entry := dto.StayReportEntry{
		OccupancyID: o.ID.String(),
		RoomNumber:  o.Room.Number,
		CheckIn:     o.CheckIn.Format(time.RFC3339),
	}
	if o.CheckOut != nil {
		entry.CheckOut = o.CheckOut.Format(time.RFC3339)
		entry.ActualHours = o.CheckOut.Sub(o.CheckIn).Hours()
	}
	if o.Price != nil {
		entry.Price = *o.Price
		entry.PaidHours = s.engine.InferPaidHours(*o.Price)
		if excess := entry.ActualHours - float64(entry.PaidHours); excess > 0 {
			entry.ExcessHours = excess
		}
	}
	return entry
}
