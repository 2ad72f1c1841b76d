package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"waiterman-system/internal/database/models"
	"waiterman-system/internal/services/order"
)

type OrderHandler struct {
	manager *order.Manager
}

func NewOrderHandler(manager *order.Manager) *OrderHandler {
	return &OrderHandler{manager: manager}
}

type OrderItemRequest struct {
	ItemID   string  `json:"item_id" binding:"required"`
	ItemName string  `json:"item_name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"min=0"`
	Tax      float64 `json:"tax" binding:"min=0"`
}

type CreateOrderRequest struct {
	BranchID      string             `json:"branch_id"`
	TableID       *string            `json:"table_id,omitempty"`
	OrderType     string             `json:"order_type"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName  *string            `json:"customer_name,omitempty"`
	CustomerPhone *string            `json:"customer_phone,omitempty"`
}

type OrderStatusUpdateRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	orderType := models.OrderType(req.OrderType)
	if req.OrderType == "" {
		orderType = models.OrderDineIn
	}

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			ItemID:   item.ItemID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
			Tax:      item.Tax,
		}
	}

	created, err := h.manager.CreateOrder(c.Request.Context(), order.CreateInput{
		BranchID:      req.BranchID,
		TableID:       req.TableID,
		OrderType:     orderType,
		Items:         items,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNoItems),
			errors.Is(err, order.ErrBadQuantity),
			errors.Is(err, order.ErrBadPrice),
			errors.Is(err, order.ErrBadTax),
			errors.Is(err, order.ErrBadOrderType):
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, errorResponse("Failed to create order"))
		}
		return
	}

	c.JSON(http.StatusOK, created)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.manager.ListOrders(c.Request.Context(), order.Filter{
		Status:  models.OrderStatus(c.Query("status")),
		TableID: c.Query("table_id"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.manager.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Database error"))
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.manager.UpdateStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.OrderStatus))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, errorResponse("Order not found"))
		case errors.Is(err, order.ErrBadStatus):
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, errorResponse("Failed to update order status"))
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
