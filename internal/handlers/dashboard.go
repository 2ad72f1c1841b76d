package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"waiterman-system/internal/database/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardStats struct {
	TotalTables     int64   `json:"total_tables"`
	OccupiedTables  int64   `json:"occupied_tables"`
	AvailableTables int64   `json:"available_tables"`
	TotalOrders     int64   `json:"total_orders"`
	TodayOrders     int64   `json:"today_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TodayRevenue    float64 `json:"today_revenue"`
	TotalMenuItems  int64   `json:"total_menu_items"`
}

// GetStats aggregates counts and revenue. Revenue is summed in memory over
// every order's grand total; there is no stored running total.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var (
		totalTables    int64
		occupiedTables int64
		totalOrders    int64
		todayOrders    int64
		totalMenuItems int64
	)

	todayStart := startOfTodayUTC(time.Now())

	if err := h.db.Model(&models.Table{}).Count(&totalTables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if err := h.db.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&occupiedTables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if err := h.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if err := h.db.Model(&models.Order{}).Where("created_at >= ?", todayStart).Count(&todayOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}
	if err := h.db.Model(&models.MenuItem{}).Count(&totalMenuItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	var orders []models.Order
	if err := h.db.Model(&models.Order{}).Select("grand_total, created_at").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	totalRevenue, todayRevenue := sumRevenue(orders, todayStart)

	c.JSON(http.StatusOK, DashboardStats{
		TotalTables:     totalTables,
		OccupiedTables:  occupiedTables,
		AvailableTables: totalTables - occupiedTables,
		TotalOrders:     totalOrders,
		TodayOrders:     todayOrders,
		TotalRevenue:    roundForDisplay(totalRevenue),
		TodayRevenue:    roundForDisplay(todayRevenue),
		TotalMenuItems:  totalMenuItems,
	})
}

func startOfTodayUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func sumRevenue(orders []models.Order, since time.Time) (total, recent float64) {
	for _, o := range orders {
		total += o.GrandTotal
		if !o.CreatedAt.Before(since) {
			recent += o.GrandTotal
		}
	}
	return total, recent
}

// roundForDisplay rounds to 2 decimals at the reporting boundary only; the
// stored figures stay unrounded.
func roundForDisplay(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
