package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kipsang/scanpos-api/internal/application/service"
	"github.com/kipsang/scanpos-api/internal/config"
	"github.com/kipsang/scanpos-api/internal/infrastructure/database"
	infraRepo "github.com/kipsang/scanpos-api/internal/infrastructure/repository"
	"github.com/kipsang/scanpos-api/internal/presentation/http/handler"
	"github.com/kipsang/scanpos-api/pkg/receipt"
	"github.com/kipsang/scanpos-api/pkg/scanner"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.App.Name = "scanpos-api"
	cfg.RateLimit.Requests = 100
	cfg.RateLimit.Duration = 1

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	userRepo := infraRepo.NewUserRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	categoryRepo := infraRepo.NewCategoryRepository(db)
	cartRepo := infraRepo.NewCartRepository(db)
	billRepo := infraRepo.NewBillRepository(db)
	checkoutRepo := infraRepo.NewCheckoutRepository(db)
	stockHistoryRepo := infraRepo.NewStockHistoryRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	receiptStore := receipt.NewStore(t.TempDir())
	barcodeReader := scanner.NewDeviceReader(filepath.Join(t.TempDir(), "missing"))

	handlers := &Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, jwtManager)),
		Product:  handler.NewProductHandler(service.NewInventoryService(productRepo, categoryRepo, stockHistoryRepo, cartRepo)),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo)),
		Cart:     handler.NewCartHandler(service.NewCartService(cartRepo, productRepo)),
		Scan:     handler.NewScanHandler(service.NewScanService(barcodeReader, productRepo, time.Second)),
		Bill:     handler.NewBillHandler(service.NewBillingService(checkoutRepo, receiptStore), service.NewBillService(billRepo)),
		User:     handler.NewUserHandler(service.NewUserService(userRepo)),
	}

	return Setup(handlers, &Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scanpos-api")
}

func TestLegacyBillEndpointsAnswerGone(t *testing.T) {
	router := newTestRouter(t)

	legacy := []string{
		"/api/v1/bills/generate",
		"/api/v1/bills/generate-bill",
		"/api/v1/generate_bill",
		"/api/v1/generate-bill",
	}
	for _, path := range legacy {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGone, w.Code, "expected 410 for GET %s", path)
		assert.Contains(t, w.Body.String(), "POST /bills/generate")
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/inventory/products"},
		{http.MethodGet, "/api/v1/cart/products"},
		{http.MethodPost, "/api/v1/bills/generate"},
		{http.MethodGet, "/api/v1/scan/barcode"},
		{http.MethodGet, "/api/v1/users"},
	}
	for _, route := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "expected 401 for %s %s", route.method, route.path)
	}
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// No credential seeded, so mint a token directly
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	token, err := jwtManager.GenerateAccessToken(mustUUID(t), "alice", "cashier")
	require.NoError(t, err)

	// Empty cart checkout refuses with 404
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/generate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestCheckoutIdempotencyReplay(t *testing.T) {
	router := newTestRouter(t)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	token, err := jwtManager.GenerateAccessToken(mustUUID(t), "alice", "cashier")
	require.NoError(t, err)

	do := func(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		router.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/v1/inventory/products",
		`{"barcode":"1111","product_name":"Milk","price":2.5,"quantity":10}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodPost, "/api/v1/cart/products", `{"barcode":"1111","quantity":2}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	key := map[string]string{"Idempotency-Key": "checkout-1"}
	first := do(http.MethodPost, "/api/v1/bills/generate", `{}`, key)
	require.Equal(t, http.StatusCreated, first.Code)

	// Same key replays the stored response instead of billing again
	second := do(http.MethodPost, "/api/v1/bills/generate", `{}`, key)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCreateProductWithBarcodeQueryParam(t *testing.T) {
	router := newTestRouter(t)
	token := mintToken(t, "alice", "cashier")

	// Scanner clients pass the barcode as a query parameter and omit it
	// from the body
	w := doAuthed(router, token, http.MethodPost, "/api/v1/inventory/products?barcode=1111",
		`{"product_name":"Milk","price":2.5,"quantity":10}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doAuthed(router, token, http.MethodGet, "/api/v1/inventory/products/1111", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Milk")

	w = doAuthed(router, token, http.MethodPost, "/api/v1/cart/products?barcode=1111",
		`{"quantity":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUserRoutesRequireAdminRole(t *testing.T) {
	router := newTestRouter(t)

	cashier := mintToken(t, "alice", "cashier")
	w := doAuthed(router, cashier, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := mintToken(t, "root", "admin")
	w = doAuthed(router, admin, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListBillsEndDateIsInclusive(t *testing.T) {
	router := newTestRouter(t)
	token := mintToken(t, "alice", "cashier")

	w := doAuthed(router, token, http.MethodPost, "/api/v1/inventory/products",
		`{"barcode":"1111","product_name":"Milk","price":2.5,"quantity":10}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doAuthed(router, token, http.MethodPost, "/api/v1/cart/products", `{"barcode":"1111"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doAuthed(router, token, http.MethodPost, "/api/v1/bills/generate", `{}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// A range naming today on both ends includes today's bills
	today := time.Now().Format("2006-01-02")
	w = doAuthed(router, token, http.MethodGet,
		"/api/v1/bills?start_date="+today+"&end_date="+today, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cashier_name":"alice"`)
}

func mintToken(t *testing.T, username, role string) string {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	token, err := jwtManager.GenerateAccessToken(uuid.New(), username, role)
	require.NoError(t, err)
	return token
}

func doAuthed(router *gin.Engine, token, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}
