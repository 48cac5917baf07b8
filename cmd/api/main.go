package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/scanpos-api/internal/application/service"
	"github.com/kipsang/scanpos-api/internal/config"
	"github.com/kipsang/scanpos-api/internal/infrastructure/database"
	"github.com/kipsang/scanpos-api/internal/infrastructure/repository"
	"github.com/kipsang/scanpos-api/internal/presentation/http/handler"
	"github.com/kipsang/scanpos-api/internal/presentation/http/routes"
	"github.com/kipsang/scanpos-api/pkg/receipt"
	"github.com/kipsang/scanpos-api/pkg/scanner"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	billRepo := repository.NewBillRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	stockHistoryRepo := repository.NewStockHistoryRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the receipt artifact store and barcode reader
	receiptStore := receipt.NewStore(cfg.Bills.StorageDir)
	barcodeReader := scanner.NewDeviceReader(cfg.Scanner.DevicePath)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	inventoryService := service.NewInventoryService(productRepo, categoryRepo, stockHistoryRepo, cartRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	billingService := service.NewBillingService(checkoutRepo, receiptStore)
	billService := service.NewBillService(billRepo)
	scanService := service.NewScanService(barcodeReader, productRepo, cfg.Scanner.Timeout)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(inventoryService),
		Category: handler.NewCategoryHandler(categoryService),
		Cart:     handler.NewCartHandler(cartService),
		Scan:     handler.NewScanHandler(scanService),
		Bill:     handler.NewBillHandler(billingService, billService),
		User:     handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
