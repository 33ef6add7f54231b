package routes

import (
	"github.com/gin-gonic/gin"

	"catering-api/config"
	"catering-api/handlers"
	"catering-api/middleware"
	"catering-api/models"
)

func Setup(r *gin.Engine, h *handlers.Handler, cfg config.Config) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Catalog reads need no auth
		public.GET("/products", h.ListProducts)
		public.GET("/products/:id", h.GetProduct)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authed.POST("/auth/logout", h.Logout)
		authed.GET("/profile", h.GetProfile)
		authed.PUT("/profile", h.UpdateProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RoleRequired(models.RoleUser))
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart", h.AddToCart)
		customer.PUT("/cart/:productId", h.SetCartQuantity)
		customer.DELETE("/cart/:productId", h.RemoveFromCart)
		customer.DELETE("/cart", h.ClearCart)

		customer.POST("/checkout", h.Checkout)
		customer.GET("/orders", h.GetMyOrders)
		customer.GET("/orders/:id", h.GetOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/orders", h.AdminListOrders)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.GET("/dashboard", h.AdminDashboard)
	}
}
