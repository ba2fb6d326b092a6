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

type occupancyFixture struct {
	svc         *occupancyService
	occupancies *fakeOccupancyRepo
	rooms       *fakeRoomRepo
	shifts      ShiftService
	sessionID   string
	roomID      uuid.UUID
}

func newOccupancyFixture(t *testing.T) *occupancyFixture {
	t.Helper()
	occupancies := newFakeOccupancyRepo()
	rooms := newFakeRoomRepo()
	shifts := NewShiftService(newFakeShiftRepo(), occupancies, &fakeConsumptionRepo{}, &fakeExpenseRepo{}, nil)

	opened, err := shifts.Open(context.Background(), uuid.New(), dto.OpenShiftRequest{
		Date:         "2026-03-10",
		Shift:        "night",
		OpeningFloat: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	room := &model.Room{Number: 12, Status: "available"}
	require.NoError(t, rooms.Create(context.Background(), room))

	svc := NewOccupancyService(occupancies, rooms, shifts, pricing.Default()).(*occupancyService)
	return &occupancyFixture{
		svc:         svc,
		occupancies: occupancies,
		rooms:       rooms,
		shifts:      shifts,
		sessionID:   opened.ID,
		roomID:      room.ID,
	}
}

func TestCheckIn(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, 12, resp.RoomNumber)
	assert.Nil(t, resp.Price)

	room, err := f.rooms.FindByID(ctx, f.roomID)
	require.NoError(t, err)
	assert.Equal(t, "occupied", room.Status)

	// Same room again: occupied, not available
	_, err = f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	assert.Error(t, err)
}

func TestCheckInRequiresOpenShift(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	_, err := f.shifts.Close(ctx, dto.CloseShiftRequest{
		ShiftSessionID: f.sessionID,
		DeclaredCash:   decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	_, err = f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	assert.Error(t, err)
}

func TestCheckOutTieredPrice(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	checkIn := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return checkIn }

	in, err := f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	require.NoError(t, err)

	// 3h30m falls in the 4h tier
	f.svc.now = func() time.Time { return checkIn.Add(3*time.Hour + 30*time.Minute) }
	out, err := f.svc.CheckOut(ctx, dto.CheckOutRequest{OccupancyID: in.ID})
	require.NoError(t, err)

	require.NotNil(t, out.Price)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(280)), "price: %s", out.Price)
	assert.False(t, out.Overridden)
	assert.Equal(t, "closed", out.Status)
	require.NotNil(t, out.CheckOut)

	room, err := f.rooms.FindByID(ctx, f.roomID)
	require.NoError(t, err)
	assert.Equal(t, "cleaning", room.Status)
}

func TestCheckOutOverridePrice(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	require.NoError(t, err)

	override := decimal.NewFromInt(250)
	out, err := f.svc.CheckOut(ctx, dto.CheckOutRequest{OccupancyID: in.ID, OverridePrice: &override})
	require.NoError(t, err)
	require.NotNil(t, out.Price)
	assert.True(t, out.Price.Equal(override))
	assert.True(t, out.Overridden)
}

func TestCheckOutRejectsNegativeOverride(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	require.NoError(t, err)

	negative := decimal.NewFromInt(-50)
	_, err = f.svc.CheckOut(ctx, dto.CheckOutRequest{OccupancyID: in.ID, OverridePrice: &negative})
	assert.Error(t, err)
}

func TestCheckOutRejectsDoubleCheckout(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	require.NoError(t, err)

	_, err = f.svc.CheckOut(ctx, dto.CheckOutRequest{OccupancyID: in.ID})
	require.NoError(t, err)
	_, err = f.svc.CheckOut(ctx, dto.CheckOutRequest{OccupancyID: in.ID})
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Quote(ctx, dto.QuoteRequest{Start: "14:00", End: "16:00"})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, resp.Hours, 1e-9)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(220)))

	// Past midnight: 23:00 → 01:00 is a 2h stay
	resp, err = f.svc.Quote(ctx, dto.QuoteRequest{Start: "23:00", End: "01:00"})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, resp.Hours, 1e-9)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(220)))

	// Equal times cannot be priced
	_, err = f.svc.Quote(ctx, dto.QuoteRequest{Start: "10:00", End: "10:00"})
	assert.ErrorIs(t, err, pricing.ErrInvalidInterval)
}

func TestPresets(t *testing.T) {
	f := newOccupancyFixture(t)
	assert.Equal(t, []int{2, 4, 5, 8, 12}, f.svc.Presets().Hours)
}

func TestListOpen(t *testing.T) {
	f := newOccupancyFixture(t)
	ctx := context.Background()

	stays, err := f.svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, stays)

	_, err = f.svc.CheckIn(ctx, dto.CheckInRequest{
		RoomID:         f.roomID.String(),
		ShiftSessionID: f.sessionID,
	})
	require.NoError(t, err)

	stays, err = f.svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, stays, 1)
	assert.Equal(t, "open", stays[0].Status)
}
