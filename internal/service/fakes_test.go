package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"motelpos/internal/model"
	"motelpos/internal/repository"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. Each one implements the full
// repository interface so the compile checks at the bottom keep them honest.

// ── ShiftRepository ──────────────────────────────────────────────────────────

type fakeShiftRepo struct {
	sessions map[uuid.UUID]*model.ShiftSession
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{sessions: make(map[uuid.UUID]*model.ShiftSession)}
}

func (r *fakeShiftRepo) Create(_ context.Context, s *model.ShiftSession) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeShiftRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ShiftSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *fakeShiftRepo) FindOpen(_ context.Context) (*model.ShiftSession, error) {
	for _, s := range r.sessions {
		if s.Status == "open" {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeShiftRepo) Update(_ context.Context, s *model.ShiftSession) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeShiftRepo) ListClosed(_ context.Context, page, limit int) ([]model.ShiftSession, int64, error) {
	var closed []model.ShiftSession
	for _, s := range r.sessions {
		if s.Status == "closed" {
			closed = append(closed, *s)
		}
	}
	sort.Slice(closed, func(i, j int) bool { return closed[i].Date.After(closed[j].Date) })
	total := int64(len(closed))
	start := (page - 1) * limit
	if start >= len(closed) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(closed) {
		end = len(closed)
	}
	return closed[start:end], total, nil
}

func (r *fakeShiftRepo) ListPendingSummaries(_ context.Context, now time.Time, limit int) ([]model.ShiftSession, error) {
	var out []model.ShiftSession
	for _, s := range r.sessions {
		if s.Status == "closed" && s.SummaryState != nil && *s.SummaryState == "pending" &&
			s.NextSummaryRetryAt != nil && !s.NextSummaryRetryAt.After(now) {
			out = append(out, *s)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// ── OccupancyRepository ──────────────────────────────────────────────────────

type fakeOccupancyRepo struct {
	stays map[uuid.UUID]*model.Occupancy
}

func newFakeOccupancyRepo() *fakeOccupancyRepo {
	return &fakeOccupancyRepo{stays: make(map[uuid.UUID]*model.Occupancy)}
}

func (r *fakeOccupancyRepo) Create(_ context.Context, o *model.Occupancy) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.stays[o.ID] = o
	return nil
}

func (r *fakeOccupancyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Occupancy, error) {
	o, ok := r.stays[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return o, nil
}

func (r *fakeOccupancyRepo) FindOpenByRoom(_ context.Context, roomID uuid.UUID) (*model.Occupancy, error) {
	for _, o := range r.stays {
		if o.RoomID == roomID && o.Status == "open" {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeOccupancyRepo) ListOpen(_ context.Context) ([]model.Occupancy, error) {
	var out []model.Occupancy
	for _, o := range r.stays {
		if o.Status == "open" {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (r *fakeOccupancyRepo) ListClosedBetween(_ context.Context, from, to time.Time) ([]model.Occupancy, error) {
	var out []model.Occupancy
	for _, o := range r.stays {
		if o.Status != "closed" || o.CheckOut == nil {
			continue
		}
		if o.CheckOut.Before(from) || o.CheckOut.After(to) {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckOut.Before(*out[j].CheckOut) })
	return out, nil
}

func (r *fakeOccupancyRepo) Update(_ context.Context, o *model.Occupancy) error {
	r.stays[o.ID] = o
	return nil
}

// ── RoomRepository ───────────────────────────────────────────────────────────

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*model.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*model.Room)}
}

func (r *fakeRoomRepo) Create(_ context.Context, room *model.Room) error {
	for _, existing := range r.rooms {
		if existing.Number == room.Number {
			return errors.New("duplicate room number")
		}
	}
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return room, nil
}

func (r *fakeRoomRepo) List(_ context.Context) ([]model.Room, error) {
	var out []model.Room
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *model.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	room, ok := r.rooms[id]
	if !ok {
		return errors.New("not found")
	}
	room.Status = status
	return nil
}

// ── ProductRepository ────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return errors.New("duplicate product name")
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context, includeInactive bool) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if !includeInactive && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

// ── ConsumptionRepository ────────────────────────────────────────────────────

type fakeConsumptionRepo struct {
	items []model.Consumption
}

func (r *fakeConsumptionRepo) Create(_ context.Context, c *model.Consumption) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.items = append(r.items, *c)
	return nil
}

func (r *fakeConsumptionRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]model.Consumption, error) {
	var out []model.Consumption
	for _, c := range r.items {
		if c.ShiftSessionID == sessionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConsumptionRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Consumption, error) {
	var out []model.Consumption
	for _, c := range r.items {
		if !c.CreatedAt.Before(from) && !c.CreatedAt.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ── ExpenseRepository ────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	items []model.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.items = append(r.items, *e)
	return nil
}

func (r *fakeExpenseRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.items {
		if e.ShiftSessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.items {
		if !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Compile checks: fakes must stay in sync with the repository interfaces.
var (
	_ repository.ShiftRepository       = (*fakeShiftRepo)(nil)
	_ repository.OccupancyRepository   = (*fakeOccupancyRepo)(nil)
	_ repository.RoomRepository        = (*fakeRoomRepo)(nil)
	_ repository.ProductRepository     = (*fakeProductRepo)(nil)
	_ repository.ConsumptionRepository = (*fakeConsumptionRepo)(nil)
	_ repository.ExpenseRepository     = (*fakeExpenseRepo)(nil)
)
