package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catering-api/cart"
	"catering-api/middleware"
)

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart lines and totals
func (h *Handler) GetCart(c *gin.Context) {
	lines, err := h.carts.Lines(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      lines,
		"totalItems": cart.TotalItems(lines),
		"totalPrice": cart.TotalPrice(lines),
	})
}

// AddToCart puts a product into the caller's cart; repeated adds of the
// same product accumulate on one line
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.Find(c.Request.Context(), req.ProductID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !product.Available {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product '" + product.Name + "' is not available"})
		return
	}

	line, err := h.carts.Add(c.Request.Context(), middleware.GetUserID(c), product, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": product.Name + " added to cart", "item": line})
}

// SetCartQuantity overwrites a line's quantity; zero removes the line
func (h *Handler) SetCartQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.carts.SetQuantity(c.Request.Context(), middleware.GetUserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveFromCart drops a line from the caller's cart
func (h *Handler) RemoveFromCart(c *gin.Context) {
	err := h.carts.Remove(c.Request.Context(), middleware.GetUserID(c), c.Param("productId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
}

// ClearCart empties the caller's cart
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
