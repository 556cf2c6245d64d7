package handlers

import (
	"net/http"

	"delivery-api/models"
	"delivery-api/services"
	"delivery-api/statemachine"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes order creation, tracking and status transitions.
type OrderHandler struct {
	orders *services.Orders
}

func NewOrderHandler(orders *services.Orders) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type PlaceOrderRequest struct {
	CustomerID   uint                 `json:"customer_id" binding:"required"`
	RestaurantID uint                 `json:"restaurant_id" binding:"required"`
	Notes        string               `json:"notes"`
	Items        []services.ItemInput `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder creates a new order
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Create(req.CustomerID, req.RestaurantID, req.Items, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetOrder returns a single order with its items
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ListCustomerOrders returns all orders for a customer, newest first
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orders.ListByCustomer(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListOrdersByStatus filters orders by status
func (h *OrderHandler) ListOrdersByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status query parameter required"})
		return
	}
	orders, err := h.orders.ListByStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through the state machine
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// CancelOrder is a convenience transition to CANCELADO
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.UpdateStatus(id, string(models.StatusCancelado))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": order})
}

// GetStateMachineInfo returns the full state machine for informational purposes
func (h *OrderHandler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusEntregue, models.StatusCancelado},
		"description":     "Order Lifecycle State Machine",
	})
}
