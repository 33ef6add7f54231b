package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catering-api/middleware"
	"catering-api/models"
)

type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       int64    `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	Available   *bool    `json:"available"`
	Servings    int      `json:"servings" binding:"min=0"`
	CookingTime string   `json:"cookingTime"`
	Ingredients []string `json:"ingredients"`
}

// ListProducts returns the catalog; ?available=true narrows to products
// currently offered
func (h *Handler) ListProducts(c *gin.Context) {
	var (
		products []*models.Product
		err      error
	)
	if c.Query("available") == "true" {
		products, err = h.catalog.Available(c.Request.Context())
	} else {
		products, err = h.catalog.List(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// GetProduct returns one product
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a product to the catalog (admin only)
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		AdminID:     middleware.GetUserID(c),
		Available:   available,
		Servings:    req.Servings,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
	}

	product, err := h.catalog.Create(c.Request.Context(), product)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct applies an explicit patch (admin only)
func (h *Handler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct removes a product from the catalog (admin only)
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
