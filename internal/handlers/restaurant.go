package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"waiterman-system/internal/database/models"
	"waiterman-system/internal/middleware"
)

type RestaurantHandler struct {
	db *gorm.DB
}

func NewRestaurantHandler(db *gorm.DB) *RestaurantHandler {
	return &RestaurantHandler{db: db}
}

type CreateRestaurantRequest struct {
	Name    string  `json:"name" binding:"required"`
	Contact *string `json:"contact,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

type CreateBranchRequest struct {
	RestaurantID string  `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Location     *string `json:"location,omitempty"`
	Contact      *string `json:"contact,omitempty"`
}

func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user := middleware.CurrentUser(c)
	restaurant := models.Restaurant{
		ID:        uuid.NewString(),
		OwnerID:   user.ID,
		Name:      req.Name,
		Contact:   req.Contact,
		Email:     req.Email,
		Address:   req.Address,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.db.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create restaurant"))
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	user := middleware.CurrentUser(c)

	query := h.db.Model(&models.Restaurant{})
	if user.Role != models.RoleSuperAdmin {
		query = query.Where("owner_id = ?", user.ID)
	}

	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var restaurant models.Restaurant
	if err := h.db.Where("id = ?", req.RestaurantID).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Restaurant not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	// Admin roles may create branches anywhere; anyone else must own the
	// restaurant.
	user := middleware.CurrentUser(c)
	if user.Role != models.RoleSuperAdmin && user.Role != models.RoleBranchAdmin && restaurant.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, errorResponse("Insufficient permissions"))
		return
	}

	branch := models.Branch{
		ID:           uuid.NewString(),
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Location:     req.Location,
		Contact:      req.Contact,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.db.Create(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create branch"))
		return
	}

	c.JSON(http.StatusOK, branch)
}

func (h *RestaurantHandler) ListBranches(c *gin.Context) {
	query := h.db.Model(&models.Branch{})

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	} else if user := middleware.CurrentUser(c); user != nil && user.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", *user.RestaurantID)
	}

	var branches []models.Branch
	if err := query.Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, branches)
}

func (h *RestaurantHandler) GetBranch(c *gin.Context) {
	var branch models.Branch
	if err := h.db.Where("id = ?", c.Param("id")).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Branch not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, branch)
}
