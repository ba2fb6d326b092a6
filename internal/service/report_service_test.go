package service

import (
	"context"
	"testing"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftReport(t *testing.T) {
	shifts := newFakeShiftRepo()
	occupancies := newFakeOccupancyRepo()
	consumptions := &fakeConsumptionRepo{}
	expenses := &fakeExpenseRepo{}

	shiftSvc := NewShiftService(shifts, occupancies, consumptions, expenses, nil)
	reports := NewReportService(shifts, occupancies, consumptions, expenses, pricing.Default())
	ctx := context.Background()

	opened, err := shiftSvc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "afternoon",
		OpeningFloat: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(opened.ID)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Paid the 4h tier ($280) but stayed 5h30m
	checkout := day.Add(16*time.Hour + 30*time.Minute)
	price := decimal.NewFromInt(280)
	require.NoError(t, occupancies.Create(ctx, &model.Occupancy{
		RoomID:         uuid.New(),
		ShiftSessionID: sessionID,
		CheckIn:        day.Add(11 * time.Hour),
		CheckOut:       &checkout,
		Price:          &price,
		Status:         "closed",
		Room:           model.Room{Number: 3},
	}))
	require.NoError(t, consumptions.Create(ctx, &model.Consumption{
		ShiftSessionID: sessionID,
		ProductID:      uuid.New(),
		Quantity:       1,
		Amount:         decimal.NewFromInt(30),
		CreatedAt:      day.Add(15 * time.Hour),
	}))
	require.NoError(t, expenses.Create(ctx, &model.Expense{
		ShiftSessionID: sessionID,
		Concept:        "towels",
		Amount:         decimal.NewFromInt(20),
		RegisteredBy:   uuid.New(),
		CreatedAt:      day.Add(16 * time.Hour),
	}))

	_, err = shiftSvc.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: opened.ID,
		DeclaredCash:   decimal.NewFromInt(790),
	})
	require.NoError(t, err)

	report, err := reports.ShiftReport(ctx, sessionID)
	require.NoError(t, err)

	require.NotNil(t, report.Session.Reconciliation)
	assert.True(t, report.Session.Reconciliation.NetIncome.Equal(decimal.NewFromInt(290)))

	require.Len(t, report.Stays, 1)
	stay := report.Stays[0]
	assert.Equal(t, 3, stay.RoomNumber)
	assert.Equal(t, 4, stay.PaidHours)
	assert.InDelta(t, 5.5, stay.ActualHours, 1e-9)
	assert.InDelta(t, 1.5, stay.ExcessHours, 1e-9)

	require.Len(t, report.Consumptions, 1)
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, "towels", report.Expenses[0].Concept)
}

func TestShiftReportNoExcessWhenWithinPaidHours(t *testing.T) {
	shifts := newFakeShiftRepo()
	occupancies := newFakeOccupancyRepo()
	reports := NewReportService(shifts, occupancies, &fakeConsumptionRepo{}, &fakeExpenseRepo{}, pricing.Default())
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	session := &model.ShiftSession{
		Date:     day,
		Shift:    "morning",
		UserID:   uuid.New(),
		Status:   "closed",
		OpenedAt: day.Add(7 * time.Hour),
	}
	require.NoError(t, shifts.Create(ctx, session))

	checkout := day.Add(10 * time.Hour)
	price := decimal.NewFromInt(220)
	require.NoError(t, occupancies.Create(ctx, &model.Occupancy{
		RoomID:         uuid.New(),
		ShiftSessionID: session.ID,
		CheckIn:        day.Add(8*time.Hour + 30*time.Minute),
		CheckOut:       &checkout,
		Price:          &price,
		Status:         "closed",
	}))

	report, err := reports.ShiftReport(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, report.Stays, 1)
	assert.Equal(t, 2, report.Stays[0].PaidHours)
	assert.Zero(t, report.Stays[0].ExcessHours)
}

func TestShiftHistoryPagination(t *testing.T) {
	shifts := newFakeShiftRepo()
	reports := NewReportService(shifts, newFakeOccupancyRepo(), &fakeConsumptionRepo{}, &fakeExpenseRepo{}, pricing.Default())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		day := time.Date(2026, 3, 10+i, 0, 0, 0, 0, time.UTC)
		require.NoError(t, shifts.Create(ctx, &model.ShiftSession{
			Date:     day,
			Shift:    "morning",
			UserID:   uuid.New(),
			Status:   "closed",
			OpenedAt: day.Add(7 * time.Hour),
		}))
	}

	page, err := reports.History(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Sessions, 2)
	// Newest first
	assert.Equal(t, "2026-03-12", page.Sessions[0].Date)

	page, err = reports.History(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Sessions, 1)

	// Out-of-range values fall back to defaults
	page, err = reports.History(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Sessions, 3)
}
