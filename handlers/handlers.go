package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"catering-api/auth"
	"catering-api/cart"
	"catering-api/catalog"
	"catering-api/config"
	"catering-api/models"
	"catering-api/order"
	"catering-api/statemachine"
	"catering-api/store"
)

// Handler bundles the services the HTTP surface renders. Everything is
// injected; there is no package-level state.
type Handler struct {
	cfg     config.Config
	auth    *auth.Service
	catalog *catalog.Service
	carts   *cart.Service
	orders  *order.Service
	log     *slog.Logger
}

func New(cfg config.Config, a *auth.Service, cat *catalog.Service, carts *cart.Service, orders *order.Service, log *slog.Logger) *Handler {
	return &Handler{cfg: cfg, auth: a, catalog: cat, carts: carts, orders: orders, log: log}
}

// fail maps service errors onto HTTP notices. Nothing here is fatal to the
// process.
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, cart.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You need to login to manage your cart"})
	case errors.Is(err, auth.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, statemachine.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnsupportedOp):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
