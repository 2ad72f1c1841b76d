package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waiterman-system/internal/database/models"
)

// Operation names a permission-gated action. The policy table below is the
// single place mapping operations to the roles allowed to perform them.
type Operation string

const (
	OpManageRestaurants Operation = "restaurants.manage"
	OpManageBranches    Operation = "branches.manage"
	OpManageMenu        Operation = "menu.manage"
	OpManageTables      Operation = "tables.manage"
	OpManageOrders      Operation = "orders.manage"
	OpViewDashboard     Operation = "dashboard.view"
)

var policy = map[Operation][]models.Role{
	OpManageRestaurants: {models.RoleSuperAdmin, models.RoleBranchAdmin},
	OpManageBranches:    {models.RoleSuperAdmin, models.RoleBranchAdmin},
	OpManageMenu:        {models.RoleSuperAdmin, models.RoleBranchAdmin, models.RoleManager},
	OpManageTables:      {models.RoleSuperAdmin, models.RoleBranchAdmin, models.RoleManager},
	OpManageOrders:      {models.RoleSuperAdmin, models.RoleBranchAdmin, models.RoleManager, models.RoleStaff},
	OpViewDashboard:     {models.RoleSuperAdmin, models.RoleBranchAdmin, models.RoleManager},
}

// Allowed reports whether the role may perform the operation.
func Allowed(op Operation, role models.Role) bool {
	for _, allowed := range policy[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RequireOperation gates a route behind the policy table. It must run after
// JWTAuth so the current user is resolved.
func RequireOperation(op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		if !Allowed(op, user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}
