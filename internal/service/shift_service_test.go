package service

import (
	"context"
	"testing"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/shiftcalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShiftFixture() (*shiftService, *fakeShiftRepo, *fakeOccupancyRepo, *fakeConsumptionRepo, *fakeExpenseRepo) {
	shifts := newFakeShiftRepo()
	occupancies := newFakeOccupancyRepo()
	consumptions := &fakeConsumptionRepo{}
	expenses := &fakeExpenseRepo{}
	svc := NewShiftService(shifts, occupancies, consumptions, expenses, nil).(*shiftService)
	return svc, shifts, occupancies, consumptions, expenses
}

func TestOpenShift(t *testing.T) {
	svc, _, _, _, _ := newShiftFixture()
	ctx := context.Background()

	resp, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "afternoon",
		OpeningFloat: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "afternoon", resp.Shift)

	// Only one drawer: a second open must fail
	_, err = svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "night",
		OpeningFloat: decimal.NewFromInt(100),
	})
	assert.Error(t, err)
}

func TestOpenShiftRejectsNegativeFloat(t *testing.T) {
	svc, _, _, _, _ := newShiftFixture()

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "morning",
		OpeningFloat: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, shiftcalc.ErrInvalidAmount)
}

func TestOpenShiftRejectsUnknownLabel(t *testing.T) {
	svc, _, _, _, _ := newShiftFixture()

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "graveyard",
		OpeningFloat: decimal.NewFromInt(100),
	})
	assert.Error(t, err)
}

func TestCloseShiftReconciles(t *testing.T) {
	svc, _, occupancies, consumptions, expenses := newShiftFixture()
	ctx := context.Background()

	opened, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "afternoon",
		OpeningFloat: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(opened.ID)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Settled stay inside the window: $280 at 16:00
	checkout := day.Add(16 * time.Hour)
	price := decimal.NewFromInt(280)
	require.NoError(t, occupancies.Create(ctx, &model.Occupancy{
		RoomID:         uuid.New(),
		ShiftSessionID: sessionID,
		CheckIn:        day.Add(12 * time.Hour),
		CheckOut:       &checkout,
		Price:          &price,
		Status:         "closed",
	}))

	// Bar sale at 15:00 and an expense at 17:00
	require.NoError(t, consumptions.Create(ctx, &model.Consumption{
		ShiftSessionID: sessionID,
		ProductID:      uuid.New(),
		Quantity:       2,
		Amount:         decimal.NewFromInt(60),
		CreatedAt:      day.Add(15 * time.Hour),
	}))
	require.NoError(t, expenses.Create(ctx, &model.Expense{
		ShiftSessionID: sessionID,
		Concept:        "plumber",
		Amount:         decimal.NewFromInt(40),
		RegisteredBy:   uuid.New(),
		CreatedAt:      day.Add(17 * time.Hour),
	}))

	resp, err := svc.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: opened.ID,
		DeclaredCash:   decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Reconciliation)

	rec := resp.Reconciliation
	assert.True(t, rec.RoomRevenue.Equal(decimal.NewFromInt(280)), "room revenue: %s", rec.RoomRevenue)
	assert.True(t, rec.ConsumptionRevenue.Equal(decimal.NewFromInt(60)))
	assert.True(t, rec.TotalExpenses.Equal(decimal.NewFromInt(40)))
	assert.True(t, rec.NetIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, rec.ExpectedCash.Equal(decimal.NewFromInt(800)))
	require.NotNil(t, rec.Variance)
	assert.True(t, rec.Variance.IsZero())
	assert.Equal(t, shiftcalc.VarianceBalanced, rec.Classification)

	assert.Equal(t, "closed", resp.Status)
	assert.NotNil(t, resp.ClosedAt)
}

func TestCloseShiftMarksSummaryPending(t *testing.T) {
	svc, shifts, _, _, _ := newShiftFixture()
	ctx := context.Background()

	opened, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "morning",
		OpeningFloat: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	_, err = svc.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: opened.ID,
		DeclaredCash:   decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	session, err := shifts.FindByID(ctx, uuid.MustParse(opened.ID))
	require.NoError(t, err)
	require.NotNil(t, session.SummaryState)
	assert.Equal(t, "pending", *session.SummaryState)
	assert.NotNil(t, session.NextSummaryRetryAt)
}

func TestCloseShiftRejectsDoubleClose(t *testing.T) {
	svc, _, _, _, _ := newShiftFixture()
	ctx := context.Background()

	opened, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "night",
		OpeningFloat: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = svc.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: opened.ID,
		DeclaredCash:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = svc.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: opened.ID,
		DeclaredCash:   decimal.NewFromInt(100),
	})
	assert.Error(t, err)
}

func TestCloseShiftListsPendingStays(t *testing.T) {
	svc, _, occupancies, _, _ := newShiftFixture()
	ctx := context.Background()

	opened, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "afternoon",
		OpeningFloat: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, occupancies.Create(ctx, &model.Occupancy{
		RoomID:         uuid.New(),
		ShiftSessionID: uuid.MustParse(opened.ID),
		CheckIn:        day.Add(15 * time.Hour),
		Status:         "open",
		Room:           model.Room{Number: 7},
	}))

	resp, err := svc.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: opened.ID,
		DeclaredCash:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	require.Len(t, resp.PendingStays, 1)
	assert.Equal(t, 7, resp.PendingStays[0].RoomNumber)
}

func TestGetActive(t *testing.T) {
	svc, _, _, _, _ := newShiftFixture()
	ctx := context.Background()

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	opened, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "morning",
		OpeningFloat: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	active, err = svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, opened.ID, active.ID)
}

func TestRequireOpen(t *testing.T) {
	svc, _, _, _, _ := newShiftFixture()
	ctx := context.Background()

	assert.Error(t, svc.RequireOpen(ctx, uuid.New()))

	opened, err := svc.Open(ctx, uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "morning",
		OpeningFloat: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	id := uuid.MustParse(opened.ID)
	assert.NoError(t, svc.RequireOpen(ctx, id))

	_, err = svc.Close(ctx, dto.CloseShiftRequest{ShiftSessionID: opened.ID, DeclaredCash: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Error(t, svc.RequireOpen(ctx, id))
}
