package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"waiterman-system/internal/database/models"
	"waiterman-system/internal/utils"
)

type TableHandler struct {
	db          *gorm.DB
	frontendURL string
}

func NewTableHandler(db *gorm.DB, frontendURL string) *TableHandler {
	return &TableHandler{db: db, frontendURL: frontendURL}
}

type TableRequest struct {
	BranchID  string `json:"branch_id"`
	TableName string `json:"table_name" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	table := models.Table{
		ID:        uuid.NewString(),
		BranchID:  req.BranchID,
		TableName: req.TableName,
		Capacity:  req.Capacity,
		Status:    models.TableAvailable,
		CreatedAt: time.Now().UTC(),
	}

	qrData := fmt.Sprintf("%s/order/%s", h.frontendURL, table.ID)
	qrURL, err := utils.GenerateQRDataURI(qrData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to generate QR code"))
		return
	}
	table.QRURL = &qrURL

	if err := h.db.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create table"))
		return
	}

	c.JSON(http.StatusOK, table)
}

func (h *TableHandler) ListTables(c *gin.Context) {
	query := h.db.Model(&models.Table{})
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}

	var tables []models.Table
	if err := query.Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) GetTable(c *gin.Context) {
	var table models.Table
	if err := h.db.Where("id = ?", c.Param("id")).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Table not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, table)
}

// UpdateTable edits the static table fields. Status is owned by the order
// lifecycle and reservation flows, not by this endpoint.
func (h *TableHandler) UpdateTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var table models.Table
	if err := h.db.Where("id = ?", c.Param("id")).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Table not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	table.TableName = req.TableName
	table.Capacity = req.Capacity
	if req.BranchID != "" {
		table.BranchID = req.BranchID
	}

	if err := h.db.Save(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update table"))
		return
	}

	c.JSON(http.StatusOK, table)
}

func (h *TableHandler) DeleteTable(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.Table{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, errorResponse("Table not found"))
		return
	}

	c.JSON(http.StatusOK, messageResponse("Table deleted successfully"))
}

func (h *TableHandler) GetTableQR(c *gin.Context) {
	var table models.Table
	if err := h.db.Where("id = ?", c.Param("id")).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Table not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_url": table.QRURL})
}
