package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motelpos/internal/dto"
	"motelpos/internal/model"
	"motelpos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type POSService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error)
	RegisterConsumption(ctx context.Context, req dto.RegisterConsumptionRequest) (*dto.ConsumptionResponse, error)
	ListConsumptions(ctx context.Context, sessionID uuid.UUID) ([]dto.ConsumptionResponse, error)
}

type posService struct {
	products     repository.ProductRepository
	consumptions repository.ConsumptionRepository
	shifts       ShiftService
}

func NewPOSService(
	products repository.ProductRepository,
	consumptions repository.ConsumptionRepository,
	shifts ShiftService,
) POSService {
	return &posService{products: products, consumptions: consumptions, shifts: shifts}
}

func (s *posService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:   req.Name,
		Price:  req.Price,
		Stock:  req.Stock,
		Active: true,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, errors.New("product name already exists")
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *posService) UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *posService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return errors.New("product not found")
	}
	p.Active = false
	return s.products.Update(ctx, p)
}

func (s *posService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	if p.Stock+req.Delta < 0 {
		return nil, fmt.Errorf("stock cannot go negative (current %d, delta %d)", p.Stock, req.Delta)
	}
	p.Stock += req.Delta
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *posService) ListProducts(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error) {
	products, err := s.products.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, len(products))
	for i := range products {
		out[i] = productToResponse(&products[i])
	}
	return out, nil
}

// ── RegisterConsumption ───────────────────────────────────────────────────────
// A sale goes to exactly one of a room (guest) or an employee. The charge is
// settled immediately and becomes a consumption event for reconciliation.

func (s *posService) RegisterConsumption(ctx context.Context, req dto.RegisterConsumptionRequest) (*dto.ConsumptionResponse, error) {
	if (req.RoomID == nil) == (req.EmployeeID == nil) {
		return nil, errors.New("consumption must reference exactly one of room_id or employee_id")
	}

	sessionID, err := uuid.Parse(req.ShiftSessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid shift_session_id: %w", err)
	}
	if err := s.shifts.RequireOpen(ctx, sessionID); err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id: %w", err)
	}
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.New("product not found")
	}
	if !p.Active {
		return nil, fmt.Errorf("product %s is inactive", p.Name)
	}
	if p.Stock < req.Quantity {
		return nil, fmt.Errorf("insufficient stock for %s (have %d, want %d)", p.Name, p.Stock, req.Quantity)
	}

	var roomID, employeeID *uuid.UUID
	if req.RoomID != nil {
		id, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room_id: %w", err)
		}
		roomID = &id
	}
	if req.EmployeeID != nil {
		id, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("invalid employee_id: %w", err)
		}
		employeeID = &id
	}

	c := &model.Consumption{
		ShiftSessionID: sessionID,
		ProductID:      productID,
		RoomID:         roomID,
		EmployeeID:     employeeID,
		Quantity:       req.Quantity,
		Amount:         p.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}
	if err := s.consumptions.Create(ctx, c); err != nil {
		return nil, err
	}

	p.Stock -= req.Quantity
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	c.Product = *p
	resp := consumptionToResponse(c)
	return &resp, nil
}

func (s *posService) ListConsumptions(ctx context.Context, sessionID uuid.UUID) ([]dto.ConsumptionResponse, error) {
	items, err := s.consumptions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsumptionResponse, len(items))
	for i := range items {
		out[i] = consumptionToResponse(&items[i])
	}
	return out, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:     p.ID.String(),
		Name:   p.Name,
		Price:  p.Price,
		Stock:  p.Stock,
		Active: p.Active,
	}
}

func consumptionToResponse(c *model.Consumption) dto.ConsumptionResponse {
	resp := dto.ConsumptionResponse{
		ID:          c.ID.String(),
		ProductID:   c.ProductID.String(),
		ProductName: c.Product.Name,
		Quantity:    c.Quantity,
		Amount:      c.Amount,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.RoomID != nil {
		id := c.RoomID.String()
		resp.RoomID = &id
	}
	if c.EmployeeID != nil {
		id := c.EmployeeID.String()
		resp.EmployeeID = &id
	}
	return resp
}
