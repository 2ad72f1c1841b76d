package models

import "time"

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleBranchAdmin Role = "branch_admin"
	RoleManager     Role = "manager"
	RoleStaff       Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleBranchAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID           string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Password     string  `gorm:"not null" json:"-"`
	Name         string  `gorm:"not null" json:"name"`
	Role         Role    `gorm:"type:varchar(32);not null" json:"role"`
	RestaurantID *string `gorm:"type:varchar(36)" json:"restaurant_id,omitempty"`
	BranchID     *string `gorm:"type:varchar(36)" json:"branch_id,omitempty"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
