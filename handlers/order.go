package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catering-api/middleware"
	"catering-api/order"
)

type CheckoutRequest struct {
	DeliveryAddress     string `json:"deliveryAddress" binding:"required"`
	ContactNumber       string `json:"contactNumber" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Checkout turns the caller's cart into a pending order
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.User(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	placed, err := h.orders.Place(c.Request.Context(), user, order.PlaceInput{
		DeliveryAddress:     req.DeliveryAddress,
		ContactNumber:       req.ContactNumber,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   placed,
	})
}

// GetMyOrders returns the caller's orders, newest first
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders, err := h.orders.ForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns one of the caller's orders
func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.orders.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if o.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}
