package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"waiterman-system/internal/database/models"
)

const (
	MENU_ITEMS_CACHE_KEY = "menu:items"
	CACHE_TTL_SHORT      = 5 * time.Minute
)

type MenuHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewMenuHandler(db *gorm.DB, redisClient *redis.Client) *MenuHandler {
	return &MenuHandler{db: db, redis: redisClient}
}

func (h *MenuHandler) invalidateMenuCaches(ctx context.Context) {
	_ = h.redis.Del(ctx, MENU_ITEMS_CACHE_KEY)
}

type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	BranchID string `json:"branch_id"`
	Status   *bool  `json:"status,omitempty"`
}

type SubCategoryRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	BranchID   string `json:"branch_id"`
	Name       string `json:"name" binding:"required"`
	Status     *bool  `json:"status,omitempty"`
}

type MenuItemRequest struct {
	BranchID      string   `json:"branch_id"`
	CategoryID    string   `json:"category_id" binding:"required"`
	SubCategoryID *string  `json:"sub_category_id,omitempty"`
	Name          string   `json:"name" binding:"required"`
	Description   *string  `json:"description,omitempty"`
	Price         float64  `json:"price" binding:"min=0"`
	PriceDineIn   *float64 `json:"price_dine_in,omitempty"`
	PriceTakeaway *float64 `json:"price_takeaway,omitempty"`
	PriceDelivery *float64 `json:"price_delivery,omitempty"`
	Tax           float64  `json:"tax" binding:"min=0"`
	Availability  *bool    `json:"availability,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// -- Categories --

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	category := models.Category{
		ID:        uuid.NewString(),
		BranchID:  req.BranchID,
		Name:      req.Name,
		Status:    boolOrDefault(req.Status, true),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create category"))
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	query := h.db.Model(&models.Category{})
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var category models.Category
	if err := h.db.Where("id = ?", c.Param("id")).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	category.Name = req.Name
	if req.BranchID != "" {
		category.BranchID = req.BranchID
	}
	category.Status = boolOrDefault(req.Status, category.Status)

	if err := h.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update category"))
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.Category{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, errorResponse("Category not found"))
		return
	}

	c.JSON(http.StatusOK, messageResponse("Category deleted successfully"))
}

// -- Subcategories --

func (h *MenuHandler) CreateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var category models.Category
	if err := h.db.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	subcategory := models.SubCategory{
		ID:         uuid.NewString(),
		CategoryID: req.CategoryID,
		BranchID:   req.BranchID,
		Name:       req.Name,
		Status:     boolOrDefault(req.Status, true),
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.db.Create(&subcategory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create subcategory"))
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

func (h *MenuHandler) ListSubCategories(c *gin.Context) {
	query := h.db.Model(&models.SubCategory{})
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var subcategories []models.SubCategory
	if err := query.Find(&subcategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, subcategories)
}

func (h *MenuHandler) UpdateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var subcategory models.SubCategory
	if err := h.db.Where("id = ?", c.Param("id")).First(&subcategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Subcategory not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	subcategory.CategoryID = req.CategoryID
	subcategory.Name = req.Name
	if req.BranchID != "" {
		subcategory.BranchID = req.BranchID
	}
	subcategory.Status = boolOrDefault(req.Status, subcategory.Status)

	if err := h.db.Save(&subcategory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update subcategory"))
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

func (h *MenuHandler) DeleteSubCategory(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.SubCategory{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, errorResponse("Subcategory not found"))
		return
	}

	c.JSON(http.StatusOK, messageResponse("Subcategory deleted successfully"))
}

// -- Menu items --

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var category models.Category
	if err := h.db.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	item := models.MenuItem{
		ID:            uuid.NewString(),
		BranchID:      req.BranchID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		PriceDineIn:   req.PriceDineIn,
		PriceTakeaway: req.PriceTakeaway,
		PriceDelivery: req.PriceDelivery,
		Tax:           req.Tax,
		Availability:  boolOrDefault(req.Availability, true),
		ImageURL:      req.ImageURL,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create menu item"))
		return
	}

	h.invalidateMenuCaches(c.Request.Context())
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	categoryID := c.Query("category_id")
	availableOnly := c.Query("available_only") == "true"

	// The unfiltered list is the hot path for the QR ordering page; serve it
	// from cache when possible.
	cacheable := categoryID == "" && !availableOnly
	ctx := c.Request.Context()

	if cacheable {
		if cached, err := h.redis.Get(ctx, MENU_ITEMS_CACHE_KEY).Result(); err == nil {
			var items []models.MenuItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				c.JSON(http.StatusOK, items)
				return
			}
		}
	}

	query := h.db.Model(&models.MenuItem{})
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if availableOnly {
		query = query.Where("availability = ?", true)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	if cacheable {
		if payload, err := json.Marshal(items); err == nil {
			_ = h.redis.Set(ctx, MENU_ITEMS_CACHE_KEY, payload, CACHE_TTL_SHORT).Err()
		}
	}

	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var item models.MenuItem
	if err := h.db.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Menu item not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	item.CategoryID = req.CategoryID
	item.SubCategoryID = req.SubCategoryID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.PriceDineIn = req.PriceDineIn
	item.PriceTakeaway = req.PriceTakeaway
	item.PriceDelivery = req.PriceDelivery
	item.Tax = req.Tax
	item.Availability = boolOrDefault(req.Availability, item.Availability)
	item.ImageURL = req.ImageURL
	if req.BranchID != "" {
		item.BranchID = req.BranchID
	}

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update menu item"))
		return
	}

	h.invalidateMenuCaches(c.Request.Context())
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, errorResponse("Menu item not found"))
		return
	}

	h.invalidateMenuCaches(c.Request.Context())
	c.JSON(http.StatusOK, messageResponse("Menu item deleted successfully"))
}
