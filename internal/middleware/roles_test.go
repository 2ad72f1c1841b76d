package middleware

import (
	"testing"

	"waiterman-system/internal/database/models"
)

func TestPolicyTable(t *testing.T) {
	tests := []struct {
		op   Operation
		role models.Role
		want bool
	}{
		{OpManageRestaurants, models.RoleSuperAdmin, true},
		{OpManageRestaurants, models.RoleBranchAdmin, true},
		{OpManageRestaurants, models.RoleManager, false},
		{OpManageRestaurants, models.RoleStaff, false},

		{OpManageMenu, models.RoleManager, true},
		{OpManageMenu, models.RoleStaff, false},

		{OpManageTables, models.RoleManager, true},
		{OpManageTables, models.RoleStaff, false},

		{OpManageOrders, models.RoleStaff, true},
		{OpManageOrders, models.RoleSuperAdmin, true},

		{OpViewDashboard, models.RoleManager, true},
		{OpViewDashboard, models.RoleStaff, false},

		{Operation("unknown.op"), models.RoleSuperAdmin, false},
		{OpManageOrders, models.Role("intern"), false},
	}

	for _, tt := range tests {
		if got := Allowed(tt.op, tt.role); got != tt.want {
			t.Errorf("Allowed(%q, %q) = %v, want %v", tt.op, tt.role, got, tt.want)
		}
	}
}
