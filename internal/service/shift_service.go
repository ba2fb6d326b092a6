package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/repository"
	"motelpos/internal/shiftcalc"
	"motelpos/internal/worker"

	"github.com/google/uuid"
)

type ShiftService interface {
	Open(ctx context.Context, userID uuid.UUID, req dto.OpenShiftRequest) (*dto.ShiftSessionResponse, error)
	Close(ctx context.Context, req dto.CloseShiftRequest) (*dto.ShiftSessionResponse, error)
	GetActive(ctx context.Context) (*dto.ShiftSessionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ShiftSessionResponse, error)
	// RequireOpen is called by occupancy/POS/expense flows before they
	// attach an event to a session.
	RequireOpen(ctx context.Context, id uuid.UUID) error
}

type shiftService struct {
	repo         repository.ShiftRepository
	occupancies  repository.OccupancyRepository
	consumptions repository.ConsumptionRepository
	expenses     repository.ExpenseRepository
	dispatcher   *worker.Dispatcher
	now          func() time.Time
}

func NewShiftService(
	repo repository.ShiftRepository,
	occupancies repository.OccupancyRepository,
	consumptions repository.ConsumptionRepository,
	expenses repository.ExpenseRepository,
	dispatcher *worker.Dispatcher,
) ShiftService {
	return &shiftService{
		repo:         repo,
		occupancies:  occupancies,
		consumptions: consumptions,
		expenses:     expenses,
		dispatcher:   dispatcher,
		now:          time.Now,
	}
}

// ── Open ──────────────────────────────────────────────────────────────────────
// One open session at a time: the front desk has a single drawer.

func (s *shiftService) Open(ctx context.Context, userID uuid.UUID, req dto.OpenShiftRequest) (*dto.ShiftSessionResponse, error) {
	if existing, err := s.repo.FindOpen(ctx); err == nil && existing != nil {
		return nil, errors.New("a shift session is already open")
	}

	label, err := shiftcalc.ParseLabel(req.Shift)
	if err != nil {
		return nil, err
	}

	date := s.now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if req.OpeningFloat.IsNegative() {
		return nil, shiftcalc.ErrInvalidAmount
	}

	session := &model.ShiftSession{
		Date:         date,
		Shift:        string(label),
		UserID:       userID,
		OpeningFloat: req.OpeningFloat,
		Status:       "open",
		OpenedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	resp := sessionToResponse(session, nil)
	return &resp, nil
}

// ── Close ─────────────────────────────────────────────────────────────────────
// Blind count: the expected drawer amount is computed only after the
// declaration arrives. Closing reconciles every settled event inside the
// session's shift window and freezes the result on the session row.

func (s *shiftService) Close(ctx context.Context, req dto.CloseShiftRequest) (*dto.ShiftSessionResponse, error) {
	sessionID, err := uuid.Parse(req.ShiftSessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid shift_session_id: %w", err)
	}
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, errors.New("shift session not found")
	}
	if session.Status != "open" {
		return nil, errors.New("shift session is already closed")
	}

	label, err := shiftcalc.ParseLabel(session.Shift)
	if err != nil {
		return nil, err
	}
	window := shiftcalc.WindowFor(session.Date, label)

	events, err := s.collectEvents(ctx, window)
	if err != nil {
		return nil, err
	}

	declared := req.DeclaredCash
	result, err := shiftcalc.Reconcile(events, window, session.OpeningFloat, &declared)
	if err != nil {
		return nil, err
	}

	now := s.now()
	classification := result.Classification
	summaryState := "pending"
	session.RoomRevenue = &result.RoomRevenue
	session.ConsumptionRevenue = &result.ConsumptionRevenue
	session.TotalExpenses = &result.TotalExpenses
	session.NetIncome = &result.NetIncome
	session.ExpectedCash = &result.ExpectedCash
	session.DeclaredCash = result.DeclaredCash
	session.Variance = result.Variance
	session.Classification = &classification
	session.Notes = req.Notes
	session.Status = "closed"
	session.SummaryState = &summaryState
	session.NextSummaryRetryAt = &now
	session.ClosedAt = &now

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	// PDF + AI narrative are generated off the request path
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueReport(ctx, worker.ReportJobPayload{SessionID: session.ID.String()})
		_ = s.dispatcher.EnqueueSummary(ctx, worker.SummaryJobPayload{SessionID: session.ID.String()})
	}

	pending, err := s.pendingStays(ctx, window)
	if err != nil {
		return nil, err
	}
	resp := sessionToResponse(session, pending)
	return &resp, nil
}

func (s *shiftService) GetActive(ctx context.Context) (*dto.ShiftSessionResponse, error) {
	session, err := s.repo.FindOpen(ctx)
	if err != nil || session == nil {
		return nil, nil
	}
	resp := sessionToResponse(session, nil)
	return &resp, nil
}

func (s *shiftService) Get(ctx context.Context, id uuid.UUID) (*dto.ShiftSessionResponse, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("shift session not found")
	}
	var pending []dto.PendingStayResponse
	if label, err := shiftcalc.ParseLabel(session.Shift); err == nil {
		window := shiftcalc.WindowFor(session.Date, label)
		pending, _ = s.pendingStays(ctx, window)
	}
	resp := sessionToResponse(session, pending)
	return &resp, nil
}

func (s *shiftService) RequireOpen(ctx context.Context, id uuid.UUID) error {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("shift session not found")
	}
	if session.Status != "open" {
		return errors.New("no open shift session")
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// collectEvents materializes the window's settled charges and expenses as
// financial events for the reconciler. Open stays are deliberately absent:
// only settled revenue counts.
func (s *shiftService) collectEvents(ctx context.Context, w shiftcalc.Window) ([]shiftcalc.FinancialEvent, error) {
	var events []shiftcalc.FinancialEvent

	stays, err := s.occupancies.ListClosedBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	for _, stay := range stays {
		if stay.Price == nil || stay.CheckOut == nil {
			continue
		}
		events = append(events, shiftcalc.FinancialEvent{
			Kind:       shiftcalc.KindRoom,
			Amount:     *stay.Price,
			OccurredAt: *stay.CheckOut,
		})
	}

	consumptions, err := s.consumptions.ListBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	for _, c := range consumptions {
		events = append(events, shiftcalc.FinancialEvent{
			Kind:       shiftcalc.KindConsumption,
			Amount:     c.Amount,
			OccurredAt: c.CreatedAt,
		})
	}

	expenses, err := s.expenses.ListBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		events = append(events, shiftcalc.FinancialEvent{
			Kind:       shiftcalc.KindExpense,
			Amount:     e.Amount,
			OccurredAt: e.CreatedAt,
		})
	}
	return events, nil
}

func (s *shiftService) pendingStays(ctx context.Context, w shiftcalc.Window) ([]dto.PendingStayResponse, error) {
	open, err := s.occupancies.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	stays := make([]shiftcalc.OpenStay, len(open))
	for i, o := range open {
		stays[i] = shiftcalc.OpenStay{
			ID:         o.ID.String(),
			RoomNumber: o.Room.Number,
			CheckIn:    o.CheckIn,
		}
	}
	active := shiftcalc.ActiveAsOf(stays, w)
	out := make([]dto.PendingStayResponse, len(active))
	for i, a := range active {
		out[i] = dto.PendingStayResponse{
			OccupancyID: a.ID,
			RoomNumber:  a.RoomNumber,
			CheckIn:     a.CheckIn.Format(time.RFC3339),
		}
	}
	return out, nil
}

func sessionToResponse(session *model.ShiftSession, pending []dto.PendingStayResponse) dto.ShiftSessionResponse {
	resp := dto.ShiftSessionResponse{
		ID:           session.ID.String(),
		Date:         session.Date.Format("2006-01-02"),
		Shift:        session.Shift,
		OpeningFloat: session.OpeningFloat,
		Status:       session.Status,
		PendingStays: pending,
		Summary:      session.Summary,
		Notes:        session.Notes,
		OpenedAt:     session.OpenedAt.Format(time.RFC3339),
	}
	if session.ClosedAt != nil {
		t := session.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &t
	}
	if session.NetIncome != nil {
		rec := &dto.ReconciliationResponse{
			RoomRevenue:        *session.RoomRevenue,
			ConsumptionRevenue: *session.ConsumptionRevenue,
			TotalExpenses:      *session.TotalExpenses,
			NetIncome:          *session.NetIncome,
			ExpectedCash:       *session.ExpectedCash,
			DeclaredCash:       session.DeclaredCash,
			Variance:           session.Variance,
		}
		if session.Classification != nil {
			rec.Classification = *session.Classification
		}
		resp.Reconciliation = rec
	}
	return resp
}
