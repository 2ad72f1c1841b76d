package models

import "time"

type Restaurant struct {
	ID      string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	OwnerID string  `gorm:"type:varchar(36);index;not null" json:"owner_id"`
	Name    string  `gorm:"not null" json:"name"`
	Contact *string `json:"contact,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `gorm:"type:text" json:"address,omitempty"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Branch struct {
	ID           string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	RestaurantID string  `gorm:"type:varchar(36);index;not null" json:"restaurant_id"`
	Name         string  `gorm:"not null" json:"name"`
	Location     *string `json:"location,omitempty"`
	Contact      *string `json:"contact,omitempty"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
