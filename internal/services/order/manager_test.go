package order

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"

	"waiterman-system/internal/database/models"
)

type fakeStore struct {
	orders map[string]*models.Order
	tables map[string]models.TableStatus
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders: make(map[string]*models.Order),
		tables: make(map[string]models.TableStatus),
	}
}

func (s *fakeStore) InsertOrder(_ context.Context, o *models.Order) error {
	cp := *o
	s.orders[o.ID] = &cp
	return nil
}

func (s *fakeStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *fakeStore) ListOrders(_ context.Context, f Filter) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if f.Status != "" && o.OrderStatus != f.Status {
			continue
		}
		if f.TableID != "" && (o.TableID == nil || *o.TableID != f.TableID) {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) SetOrderStatus(_ context.Context, id string, status models.OrderStatus) error {
	o, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.OrderStatus = status
	return nil
}

func (s *fakeStore) SetTableStatus(_ context.Context, tableID string, status models.TableStatus) error {
	s.tables[tableID] = status
	return nil
}

func strPtr(s string) *string { return &s }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func TestCreateOrderTotals(t *testing.T) {
	tests := []struct {
		name            string
		items           []models.OrderItem
		wantTotal       float64
		wantTax         float64
		wantGrand       float64
	}{
		{
			name: "single item twice with tax",
			items: []models.OrderItem{
				{ItemID: "i1", ItemName: "Margherita", Quantity: 2, Price: 99.99, Tax: 9.99},
			},
			wantTotal: 199.98,
			wantTax:   19.98,
			wantGrand: 219.96,
		},
		{
			name: "multiple items",
			items: []models.OrderItem{
				{ItemID: "i1", ItemName: "Burger", Quantity: 1, Price: 10.50, Tax: 1.05},
				{ItemID: "i2", ItemName: "Fries", Quantity: 3, Price: 3.25, Tax: 0},
			},
			wantTotal: 20.25,
			wantTax:   1.05,
			wantGrand: 21.30,
		},
		{
			name: "free item",
			items: []models.OrderItem{
				{ItemID: "i1", ItemName: "Water", Quantity: 4, Price: 0, Tax: 0},
			},
			wantTotal: 0,
			wantTax:   0,
			wantGrand: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(newFakeStore())
			got, err := m.CreateOrder(context.Background(), CreateInput{
				OrderType: models.OrderTakeaway,
				Items:     tt.items,
			})
			if err != nil {
				t.Fatalf("CreateOrder: %v", err)
			}
			if !almostEqual(got.TotalAmount, tt.wantTotal) {
				t.Errorf("TotalAmount = %v, want %v", got.TotalAmount, tt.wantTotal)
			}
			if !almostEqual(got.Tax, tt.wantTax) {
				t.Errorf("Tax = %v, want %v", got.Tax, tt.wantTax)
			}
			if got.Discount != 0 {
				t.Errorf("Discount = %v, want 0", got.Discount)
			}
			if !almostEqual(got.GrandTotal, tt.wantGrand) {
				t.Errorf("GrandTotal = %v, want %v", got.GrandTotal, tt.wantGrand)
			}
			if got.GrandTotal != got.TotalAmount+got.Tax-got.Discount {
				t.Errorf("grand total identity broken: %v != %v + %v - %v",
					got.GrandTotal, got.TotalAmount, got.Tax, got.Discount)
			}
			if got.PaymentStatus != models.PaymentPending {
				t.Errorf("PaymentStatus = %q, want pending", got.PaymentStatus)
			}
			if got.OrderStatus != models.OrderPending {
				t.Errorf("OrderStatus = %q, want pending", got.OrderStatus)
			}
			if got.ID == "" {
				t.Error("expected generated id")
			}
			if got.CreatedAt.IsZero() {
				t.Error("expected creation timestamp")
			}
		})
	}
}

func TestCreateOrderValidation(t *testing.T) {
	valid := []models.OrderItem{{ItemID: "i1", ItemName: "Burger", Quantity: 1, Price: 5, Tax: 0}}

	tests := []struct {
		name    string
		in      CreateInput
		wantErr error
	}{
		{
			name:    "no items",
			in:      CreateInput{OrderType: models.OrderDineIn},
			wantErr: ErrNoItems,
		},
		{
			name: "zero quantity",
			in: CreateInput{
				OrderType: models.OrderDineIn,
				Items:     []models.OrderItem{{ItemID: "i1", Quantity: 0, Price: 5}},
			},
			wantErr: ErrBadQuantity,
		},
		{
			name: "negative price",
			in: CreateInput{
				OrderType: models.OrderDineIn,
				Items:     []models.OrderItem{{ItemID: "i1", Quantity: 1, Price: -1}},
			},
			wantErr: ErrBadPrice,
		},
		{
			name: "negative tax",
			in: CreateInput{
				OrderType: models.OrderDineIn,
				Items:     []models.OrderItem{{ItemID: "i1", Quantity: 1, Price: 1, Tax: -0.5}},
			},
			wantErr: ErrBadTax,
		},
		{
			name:    "unknown order type",
			in:      CreateInput{OrderType: "drive_through", Items: valid},
			wantErr: ErrBadOrderType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(newFakeStore())
			if _, err := m.CreateOrder(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateOrderTableOccupancy(t *testing.T) {
	items := []models.OrderItem{{ItemID: "i1", ItemName: "Burger", Quantity: 1, Price: 5}}

	tests := []struct {
		name       string
		orderType  models.OrderType
		tableID    *string
		wantStatus models.TableStatus
		wantTouch  bool
	}{
		{name: "dine-in with table", orderType: models.OrderDineIn, tableID: strPtr("t1"), wantStatus: models.TableOccupied, wantTouch: true},
		{name: "dine-in without table", orderType: models.OrderDineIn, tableID: nil, wantTouch: false},
		{name: "takeaway with table ref", orderType: models.OrderTakeaway, tableID: strPtr("t1"), wantTouch: false},
		{name: "delivery", orderType: models.OrderDelivery, tableID: nil, wantTouch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			m := NewManager(store)
			if _, err := m.CreateOrder(context.Background(), CreateInput{
				OrderType: tt.orderType,
				TableID:   tt.tableID,
				Items:     items,
			}); err != nil {
				t.Fatalf("CreateOrder: %v", err)
			}

			status, touched := store.tables["t1"]
			if touched != tt.wantTouch {
				t.Fatalf("table touched = %v, want %v", touched, tt.wantTouch)
			}
			if tt.wantTouch && status != tt.wantStatus {
				t.Errorf("table status = %q, want %q", status, tt.wantStatus)
			}
		})
	}
}

func TestCreateOrderOccupiedTableAccepted(t *testing.T) {
	store := newFakeStore()
	store.tables["t1"] = models.TableOccupied
	m := NewManager(store)

	// No availability pre-check: a second dine-in order against an occupied
	// table goes through and the occupied write is a no-op.
	_, err := m.CreateOrder(context.Background(), CreateInput{
		OrderType: models.OrderDineIn,
		TableID:   strPtr("t1"),
		Items:     []models.OrderItem{{ItemID: "i1", Quantity: 1, Price: 5}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if store.tables["t1"] != models.TableOccupied {
		t.Errorf("table status = %q, want occupied", store.tables["t1"])
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		tableID     *string
		newStatus   models.OrderStatus
		wantTableAs models.TableStatus
		wantTouch   bool
	}{
		{name: "completed frees table", tableID: strPtr("t1"), newStatus: models.OrderCompleted, wantTableAs: models.TableAvailable, wantTouch: true},
		{name: "preparing leaves table", tableID: strPtr("t1"), newStatus: models.OrderPreparing, wantTableAs: models.TableOccupied, wantTouch: true},
		{name: "cancelled leaves table", tableID: strPtr("t1"), newStatus: models.OrderCancelled, wantTableAs: models.TableOccupied, wantTouch: true},
		{name: "completed without table", tableID: nil, newStatus: models.OrderCompleted, wantTouch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			m := NewManager(store)

			created, err := m.CreateOrder(context.Background(), CreateInput{
				OrderType: models.OrderDineIn,
				TableID:   tt.tableID,
				Items:     []models.OrderItem{{ItemID: "i1", Quantity: 1, Price: 5}},
			})
			if err != nil {
				t.Fatalf("CreateOrder: %v", err)
			}

			updated, err := m.UpdateStatus(context.Background(), created.ID, tt.newStatus)
			if err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			if updated.OrderStatus != tt.newStatus {
				t.Errorf("OrderStatus = %q, want %q", updated.OrderStatus, tt.newStatus)
			}

			status, touched := store.tables["t1"]
			if touched != tt.wantTouch {
				t.Fatalf("table touched = %v, want %v", touched, tt.wantTouch)
			}
			if tt.wantTouch && status != tt.wantTableAs {
				t.Errorf("table status = %q, want %q", status, tt.wantTableAs)
			}
		})
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	_, err := m.UpdateStatus(context.Background(), "missing", models.OrderCompleted)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
	if len(store.tables) != 0 {
		t.Error("no table should be mutated for an unknown order")
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	m := NewManager(newFakeStore())
	if _, err := m.UpdateStatus(context.Background(), "any", "teleported"); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
}

func TestListOrdersFilter(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	mk := func(orderType models.OrderType, tableID *string) *models.Order {
		o, err := m.CreateOrder(context.Background(), CreateInput{
			OrderType: orderType,
			TableID:   tableID,
			Items:     []models.OrderItem{{ItemID: "i1", Quantity: 1, Price: 5}},
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		return o
	}

	a := mk(models.OrderDineIn, strPtr("t1"))
	mk(models.OrderTakeaway, nil)
	if _, err := m.UpdateStatus(context.Background(), a.ID, models.OrderPreparing); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	byStatus, err := m.ListOrders(context.Background(), Filter{Status: models.OrderPreparing})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != a.ID {
		t.Errorf("status filter returned %d orders, want just %s", len(byStatus), a.ID)
	}

	byTable, err := m.ListOrders(context.Background(), Filter{TableID: "t1"})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(byTable) != 1 || byTable[0].ID != a.ID {
		t.Errorf("table filter returned %d orders, want just %s", len(byTable), a.ID)
	}
}
