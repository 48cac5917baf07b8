package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/scanpos-api/internal/config"
	domainRepo "github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/internal/presentation/http/handler"
	"github.com/kipsang/scanpos-api/internal/presentation/http/middleware"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Scan     *handler.ScanHandler
	Bill     *handler.BillHandler
	User     *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		// Retired GET-based bill generation paths. These mutated state
		// on GET and now refuse with instructions rather than 404, so
		// old clients fail loudly instead of silently retrying.
		registerLegacyRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerLegacyRoutes(v1 *gin.RouterGroup) {
	v1.GET("/bills/generate", handler.LegacyGone)
	v1.GET("/bills/generate-bill", handler.LegacyGone)
	v1.GET("/generate_bill", handler.LegacyGone)
	v1.GET("/generate-bill", handler.LegacyGone)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	registerInventoryRoutes(protected, h)
	registerCategoryRoutes(protected, h)
	registerCartRoutes(protected, h)
	registerBillRoutes(protected, h, deps)
	registerScanRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/inventory/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:barcode", h.Product.Get)
		products.PUT("/:barcode", h.Product.Update)
		products.DELETE("/:barcode", h.Product.Delete)
		products.GET("/:barcode/history", h.Product.GetStockHistory)
		products.POST("/:barcode/restock", h.Product.Restock)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("/products", h.Cart.List)
		cart.POST("/products", h.Cart.Add)
		cart.PUT("/products/:barcode", h.Cart.Update)
		cart.DELETE("/products/:barcode", h.Cart.Delete)
		cart.DELETE("/clear", h.Cart.Clear)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := protected.Group("/bills")
	{
		// Checkout honors Idempotency-Key so a retried request cannot
		// produce a second bill.
		bills.POST("/generate", middleware.Idempotency(deps.IdempotencyRepo), h.Bill.Generate)
		bills.GET("", h.Bill.List)
		bills.GET("/:id", h.Bill.Get)
		bills.GET("/:id/ticket", h.Bill.GetTicket)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/daily-sales", h.Bill.DailyReport)
	}
}

func registerScanRoutes(protected *gin.RouterGroup, h *Handlers) {
	scan := protected.Group("/scan")
	{
		scan.GET("/barcode", h.Scan.Scan)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Operator accounts are managed by admins only
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
