package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catering-api/models"
	"catering-api/statemachine"
)

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdminListOrders returns every order, newest first
func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.orders.All(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AdminUpdateOrderStatus moves an order along the lifecycle
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.Known(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated to " + string(o.Status),
		"order":   o,
	})
}

// AdminDashboard aggregates order and catalog figures
func (h *Handler) AdminDashboard(c *gin.Context) {
	stats, err := h.orders.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	productCount, err := h.catalog.Count(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalOrders":    stats.TotalOrders,
		"totalRevenue":   stats.TotalRevenue,
		"ordersByStatus": stats.ByStatus,
		"totalProducts":  productCount,
	})
}
