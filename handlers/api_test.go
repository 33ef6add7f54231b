package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering-api/auth"
	"catering-api/cart"
	"catering-api/catalog"
	"catering-api/config"
	"catering-api/handlers"
	"catering-api/order"
	"catering-api/routes"
	"catering-api/store"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{JWTSecret: []byte("test_secret")}
	st := store.New(store.NewMemory())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	authSvc := auth.NewService(st, log)
	catalogSvc := catalog.NewService(st, log)
	cartSvc := cart.NewService(st, log)
	orderSvc := order.NewService(st, cartSvc, log)

	h := handlers.New(cfg, authSvc, catalogSvc, cartSvc, orderSvc, log)
	r := gin.New()
	routes.Setup(r, h, cfg)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test " + role,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createProduct(t *testing.T, r *gin.Engine, adminToken string, name string, price int64) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"name":        name,
		"description": "A test dish",
		"price":       price,
		"category":    "Main Course",
		"servings":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	product, _ := decode(t, w)["product"].(map[string]any)
	id, _ := product["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCheckoutFlow(t *testing.T) {
	r := newRouter()

	adminToken := register(t, r, "admin@demo.com", "admin")
	userToken := register(t, r, "user@demo.com", "user")

	p1 := createProduct(t, r, adminToken, "Vegetarian Thali", 199)
	p2 := createProduct(t, r, adminToken, "Masala Chai Pack", 99)

	// 199×2 + 99×1 + 50 delivery fee = 596
	w := do(t, r, http.MethodPost, "/api/cart", userToken, gin.H{"productId": p1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(t, r, http.MethodPost, "/api/cart", userToken, gin.H{"productId": p2, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/cart", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cartBody := decode(t, w)
	assert.Equal(t, float64(3), cartBody["totalItems"])
	assert.Equal(t, float64(199*2+99), cartBody["totalPrice"])

	w = do(t, r, http.MethodPost, "/api/checkout", userToken, gin.H{
		"deliveryAddress": "42 Main Street",
		"contactNumber":   "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placed, _ := decode(t, w)["order"].(map[string]any)
	assert.Equal(t, float64(596), placed["totalAmount"])
	assert.Equal(t, "pending", placed["status"])

	// cart is empty after checkout
	w = do(t, r, http.MethodGet, "/api/cart", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["totalItems"])

	// order shows up in the user's history
	w = do(t, r, http.MethodGet, "/api/orders", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
}

func TestOrderStatusLifecycle(t *testing.T) {
	r := newRouter()

	adminToken := register(t, r, "admin@demo.com", "admin")
	userToken := register(t, r, "user@demo.com", "user")
	p1 := createProduct(t, r, adminToken, "Vegetarian Thali", 199)

	w := do(t, r, http.MethodPost, "/api/cart", userToken, gin.H{"productId": p1, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/checkout", userToken, gin.H{
		"deliveryAddress": "42 Main Street",
		"contactNumber":   "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	placed, _ := decode(t, w)["order"].(map[string]any)
	orderID, _ := placed["id"].(string)
	require.NotEmpty(t, orderID)

	statusPath := fmt.Sprintf("/api/admin/orders/%s/status", orderID)

	// skipping ahead is rejected
	w = do(t, r, http.MethodPut, statusPath, adminToken, gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = do(t, r, http.MethodPut, statusPath, adminToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// customers cannot drive the lifecycle
	w = do(t, r, http.MethodPut, statusPath, userToken, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/api/orders/"+orderID, userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	o, _ := decode(t, w)["order"].(map[string]any)
	assert.Equal(t, "confirmed", o["status"])
}

func TestAuthNotices(t *testing.T) {
	r := newRouter()

	register(t, r, "a@b.com", "user")

	// duplicate registration
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Dup", "email": "a@b.com", "password": "password123", "role": "user",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// wrong password
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@b.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// right password, no credential leak
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@b.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	user, _ := decode(t, w)["user"].(map[string]any)
	_, leaked := user["password"]
	assert.False(t, leaked)

	// cart requires a token
	w = do(t, r, http.MethodPost, "/api/cart", "", gin.H{"productId": "x", "quantity": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminDashboard(t *testing.T) {
	r := newRouter()

	adminToken := register(t, r, "admin@demo.com", "admin")
	userToken := register(t, r, "user@demo.com", "user")
	p1 := createProduct(t, r, adminToken, "Vegetarian Thali", 199)

	w := do(t, r, http.MethodPost, "/api/cart", userToken, gin.H{"productId": p1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/checkout", userToken, gin.H{
		"deliveryAddress": "42 Main Street",
		"contactNumber":   "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["totalOrders"])
	assert.Equal(t, float64(199*2+50), body["totalRevenue"])
	assert.Equal(t, float64(1), body["totalProducts"])
}

func TestPublicCatalog(t *testing.T) {
	r := newRouter()

	adminToken := register(t, r, "admin@demo.com", "admin")
	p1 := createProduct(t, r, adminToken, "Vegetarian Thali", 199)

	// hide it, then check the availability filter
	w := do(t, r, http.MethodPut, "/api/admin/products/"+p1, adminToken, gin.H{"available": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = do(t, r, http.MethodGet, "/api/products?available=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])

	w = do(t, r, http.MethodGet, "/api/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
