package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"catering-api/auth"
	"catering-api/cart"
	"catering-api/catalog"
	"catering-api/config"
	"catering-api/handlers"
	"catering-api/logger"
	"catering-api/order"
	"catering-api/routes"
	"catering-api/seed"
	"catering-api/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "catering-api",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	gin.SetMode(cfg.GinMode)
	// Patch bodies must not smuggle fields the typed models don't declare
	gin.EnableJsonDecoderDisallowUnknownFields()

	kv, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	st := store.New(kv)

	if cfg.SeedDemo {
		if err := seed.Demo(context.Background(), st, log); err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	authSvc := auth.NewService(st, log)
	catalogSvc := catalog.NewService(st, log)
	cartSvc := cart.NewService(st, log)
	orderSvc := order.NewService(st, cartSvc, log)

	h := handlers.New(cfg, authSvc, catalogSvc, cartSvc, orderSvc, log)

	// Default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Catering Ordering API",
			"version": "1.0.0",
		})
	})

	routes.Setup(r, h, cfg)

	log.Info("server running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
