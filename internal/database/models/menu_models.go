package models

import "time"

type Category struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	BranchID string `gorm:"type:varchar(36);index" json:"branch_id"`
	Name     string `gorm:"not null" json:"name"`
	Status   bool   `gorm:"default:true" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

type SubCategory struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	CategoryID string `gorm:"type:varchar(36);index;not null" json:"category_id"`
	BranchID   string `gorm:"type:varchar(36);index" json:"branch_id"`
	Name       string `gorm:"not null" json:"name"`
	Status     bool   `gorm:"default:true" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// MenuItem carries the base price plus optional per-channel overrides.
// Orders snapshot name/price/tax at creation time, so edits here never
// touch placed orders.
type MenuItem struct {
	ID            string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	BranchID      string  `gorm:"type:varchar(36);index" json:"branch_id"`
	CategoryID    string  `gorm:"type:varchar(36);index;not null" json:"category_id"`
	SubCategoryID *string `gorm:"type:varchar(36)" json:"sub_category_id,omitempty"`
	Name          string  `gorm:"not null" json:"name"`
	Description   *string `gorm:"type:text" json:"description,omitempty"`

	Price         float64  `gorm:"not null" json:"price"`
	PriceDineIn   *float64 `json:"price_dine_in,omitempty"`
	PriceTakeaway *float64 `json:"price_takeaway,omitempty"`
	PriceDelivery *float64 `json:"price_delivery,omitempty"`
	Tax           float64  `gorm:"default:0" json:"tax"`

	Availability bool    `gorm:"default:true" json:"availability"`
	ImageURL     *string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
