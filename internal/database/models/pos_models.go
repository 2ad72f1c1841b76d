package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderDineIn, OrderTakeaway, OrderDelivery:
		return true
	}
	return false
}

type Table struct {
	ID        string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	BranchID  string      `gorm:"type:varchar(36);index" json:"branch_id"`
	TableName string      `gorm:"not null" json:"table_name"`
	Capacity  int         `gorm:"not null" json:"capacity"`
	Status    TableStatus `gorm:"type:varchar(16);default:'available'" json:"status"`
	QRURL     *string     `gorm:"type:text" json:"qr_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem is a snapshot of the menu item at order time, not a live
// reference. Menu edits after the order is placed do not affect it.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Tax      float64 `json:"tax"`
}

type OrderItems []OrderItem

func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = OrderItems{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("failed to scan OrderItems: %v", value)
		}
	}

	return json.Unmarshal(bytes, items)
}

func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}
	return json.Marshal(items)
}

type Order struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	BranchID  string     `gorm:"type:varchar(36);index" json:"branch_id"`
	TableID   *string    `gorm:"type:varchar(36);index" json:"table_id,omitempty"`
	OrderType OrderType  `gorm:"type:varchar(16);not null" json:"order_type"`
	Items     OrderItems `gorm:"type:jsonb;not null" json:"items"`

	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`

	TotalAmount float64 `gorm:"not null" json:"total_amount"`
	Discount    float64 `gorm:"default:0" json:"discount"`
	Tax         float64 `gorm:"default:0" json:"tax"`
	GrandTotal  float64 `gorm:"not null" json:"grand_total"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(16);default:'pending'" json:"payment_status"`
	OrderStatus   OrderStatus   `gorm:"type:varchar(16);default:'pending'" json:"order_status"`

	CreatedAt time.Time `json:"created_at"`
}
