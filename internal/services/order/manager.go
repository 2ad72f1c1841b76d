// Package order owns the two operations with cross-entity effects: creating
// an order (pricing computation plus dine-in table occupancy) and moving an
// order through its status lifecycle (freeing the table on completion).
package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"waiterman-system/internal/database/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoItems       = errors.New("order must have at least one item")
	ErrBadQuantity   = errors.New("item quantity must be a positive integer")
	ErrBadPrice      = errors.New("item price must be non-negative")
	ErrBadTax        = errors.New("item tax must be non-negative")
	ErrBadOrderType  = errors.New("invalid order type")
	ErrBadStatus     = errors.New("invalid order status")
)

// Store is the persistence surface the manager needs. The gorm-backed
// implementation lives in store.go; tests substitute an in-memory fake.
type Store interface {
	InsertOrder(ctx context.Context, o *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, f Filter) ([]models.Order, error)
	SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	SetTableStatus(ctx context.Context, tableID string, status models.TableStatus) error
}

type Filter struct {
	Status  models.OrderStatus
	TableID string
}

type CreateInput struct {
	BranchID      string
	TableID       *string
	OrderType     models.OrderType
	Items         []models.OrderItem
	CustomerName  *string
	CustomerPhone *string
}

type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// CreateOrder computes the order totals, persists the order, and marks the
// table occupied for dine-in orders. The two writes are sequential and
// independent: a failure after the order insert leaves the table untouched
// until a corrective write. There is deliberately no check that the table is
// currently available; a dine-in order against an occupied table is accepted
// and the occupied write is idempotent.
func (m *Manager) CreateOrder(ctx context.Context, in CreateInput) (*models.Order, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	totalAmount, tax := computeTotals(in.Items)
	discount := 0.0

	order := &models.Order{
		ID:            uuid.NewString(),
		BranchID:      in.BranchID,
		TableID:       in.TableID,
		OrderType:     in.OrderType,
		Items:         in.Items,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		TotalAmount:   totalAmount,
		Discount:      discount,
		Tax:           tax,
		GrandTotal:    totalAmount + tax - discount,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.store.InsertOrder(ctx, order); err != nil {
		return nil, err
	}

	if order.OrderType == models.OrderDineIn && order.TableID != nil {
		if err := m.store.SetTableStatus(ctx, *order.TableID, models.TableOccupied); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// UpdateStatus sets the order status unconditionally; any status may follow
// any other. Completing an order with a table reference frees that table
// even if other open orders still point at it. This is the only code path
// that mutates table status as a side effect of order activity.
func (m *Manager) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrBadStatus
	}

	order, err := m.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := m.store.SetOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.OrderStatus = status

	if status == models.OrderCompleted && order.TableID != nil {
		if err := m.store.SetTableStatus(ctx, *order.TableID, models.TableAvailable); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (m *Manager) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return m.store.GetOrder(ctx, orderID)
}

func (m *Manager) ListOrders(ctx context.Context, f Filter) ([]models.Order, error) {
	return m.store.ListOrders(ctx, f)
}

func validateInput(in CreateInput) error {
	if !in.OrderType.Valid() {
		return ErrBadOrderType
	}
	if len(in.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return ErrBadQuantity
		}
		if item.Price < 0 {
			return ErrBadPrice
		}
		if item.Tax < 0 {
			return ErrBadTax
		}
	}
	return nil
}

// computeTotals is plain float64 summation with no intermediate rounding;
// rounding happens only at display boundaries.
func computeTotals(items []models.OrderItem) (totalAmount, tax float64) {
	for _, item := range items {
		qty := float64(item.Quantity)
		totalAmount += item.Price * qty
		tax += item.Tax * qty
	}
	return totalAmount, tax
}
