package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/data"
	"github.com/hikegear/storefront/repository"
	"github.com/hikegear/storefront/routes"
	"github.com/hikegear/storefront/services"
	"github.com/hikegear/storefront/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	catalogRepo := repository.NewMemoryCatalog(data.SeedProducts())
	orderRepo, err := repository.NewOrderLedger(t.Context(), store)
	assert.NoError(t, err)
	contentRepo := repository.NewContentRepository(t.Context(), store)

	tokens := services.NewTokenService("test-secret", time.Hour)
	carts := services.NewCartService(repository.NewMemoryCarts(), catalogRepo)

	r := gin.New()
	routes.Register(r, routes.Deps{
		Tokens:  tokens,
		Auth:    services.NewAuthService(data.SeedAllowList(), tokens),
		Catalog: services.NewCatalogService(catalogRepo, data.Categories()),
		Carts:   carts,
		Orders:  services.NewOrderService(orderRepo, carts),
		Content: services.NewContentService(contentRepo),
	})
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": "password"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestLoginFailures(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "admin@test.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "nobody@test.com", "password": "password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/cart/items", "", gin.H{"product_id": "1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "user@test.com")

	w := doJSON(r, http.MethodPost, "/cart/items", token, gin.H{"product_id": "1"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/cart/items", token, gin.H{"product_id": "1"})
	assert.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		ItemCount  int     `json:"item_count"`
		TotalPrice float64 `json:"total_price"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, 2, cart.ItemCount)
	assert.InDelta(t, 2*149.99, cart.TotalPrice, 1e-9)

	// Bank transfer with no receipt is rejected.
	checkout := gin.H{
		"payment_method": "bank-transfer",
		"shipping": gin.H{
			"full_name": "John Doe", "address": "1 Trailhead Rd",
			"city": "Boulder", "zip_code": "80301", "phone": "555-0100",
		},
	}
	w = doJSON(r, http.MethodPost, "/checkout", token, checkout)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	checkout["transfer_receipt"] = "receipt-001.jpg"
	w = doJSON(r, http.MethodPost, "/checkout", token, checkout)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Cart is cleared after checkout and the order shows up in history.
	w = doJSON(r, http.MethodGet, "/cart", token, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Zero(t, cart.ItemCount)

	w = doJSON(r, http.MethodGet, "/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders struct {
		Orders []struct {
			Status string  `json:"status"`
			Total  float64 `json:"total"`
		} `json:"orders"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders.Orders, 1)
	assert.Equal(t, "pending", orders.Orders[0].Status)
	assert.InDelta(t, 2*149.99, orders.Orders[0].Total, 1e-9)
}

func TestAdminCheckoutForbidden(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin@test.com")

	w := doJSON(r, http.MethodPost, "/checkout", token, gin.H{
		"payment_method": "cash-on-delivery",
		"shipping": gin.H{
			"full_name": "Admin User", "address": "HQ",
			"city": "Boulder", "zip_code": "80301", "phone": "555-0000",
		},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r := newTestRouter(t)
	userToken := login(t, r, "user@test.com")

	w := doJSON(r, http.MethodGet, "/admin/orders", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	r := newTestRouter(t)
	userToken := login(t, r, "user@test.com")
	adminToken := login(t, r, "admin@test.com")

	doJSON(r, http.MethodPost, "/cart/items", userToken, gin.H{"product_id": "2"})
	w := doJSON(r, http.MethodPost, "/checkout", userToken, gin.H{
		"payment_method": "cash-on-delivery",
		"shipping": gin.H{
			"full_name": "John Doe", "address": "1 Trailhead Rd",
			"city": "Boulder", "zip_code": "80301", "phone": "555-0100",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPatch, "/admin/orders/"+created.Order.ID+"/status", adminToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Revenue       float64 `json:"revenue"`
		PendingOrders int     `json:"pending_orders"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.InDelta(t, 189.99, stats.Revenue, 1e-9)
	assert.Zero(t, stats.PendingOrders)

	w = doJSON(r, http.MethodPatch, "/admin/orders/"+created.Order.ID+"/status", adminToken, gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHomeSwapsToAdminConsole(t *testing.T) {
	r := newTestRouter(t)

	var home struct {
		View string `json:"view"`
	}

	w := doJSON(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, "storefront", home.View)

	userToken := login(t, r, "user@test.com")
	w = doJSON(r, http.MethodGet, "/", userToken, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, "storefront", home.View)

	adminToken := login(t, r, "admin@test.com")
	w = doJSON(r, http.MethodGet, "/", adminToken, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, "admin", home.View)
}

func TestLogoutRevokesAccess(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "user@test.com")

	w := doJSON(r, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminContentEditing(t *testing.T) {
	r := newTestRouter(t)
	adminToken := login(t, r, "admin@test.com")

	w := doJSON(r, http.MethodPut, "/admin/content/bank", adminToken, gin.H{"bank_number": "9999000011"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/content/bank", adminToken, nil)
	var bank struct {
		BankNumber string `json:"bank_number"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bank))
	assert.Equal(t, "9999000011", bank.BankNumber)

	w = doJSON(r, http.MethodPut, "/admin/content/hero", adminToken, gin.H{"hero_images": []string{""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotFoundFallback(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/no/such/page", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBindFailuresAreTranslated(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "user@test.com")

	// Missing required product_id: the shared error middleware renders the
	// binding failure as a 400 with the validator's detail.
	w := doJSON(r, http.MethodPost, "/cart/items", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request", resp.Error)
	assert.NotEmpty(t, resp.Details)
}

func TestContactFormValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/contact", "", gin.H{"name": "Jane"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/contact", "", gin.H{
		"name": "Jane", "email": "jane@example.com",
		"subject": "Sizing", "message": "Does the 50L pack fit a bear canister?",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
