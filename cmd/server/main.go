package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/myorder/backend/internal/application/catalog"
	identityapp "github.com/myorder/backend/internal/application/identity"
	integrationapp "github.com/myorder/backend/internal/application/integration"
	partnerapp "github.com/myorder/backend/internal/application/partner"
	tradeapp "github.com/myorder/backend/internal/application/trade"
	"github.com/myorder/backend/internal/infrastructure/auth"
	"github.com/myorder/backend/internal/infrastructure/config"
	"github.com/myorder/backend/internal/infrastructure/legacy"
	"github.com/myorder/backend/internal/infrastructure/logger"
	"github.com/myorder/backend/internal/infrastructure/persistence"
	"github.com/myorder/backend/internal/interfaces/http/handler"
	"github.com/myorder/backend/internal/interfaces/http/middleware"
	"github.com/myorder/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting order management backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	inboundRepo := persistence.NewGormInboundRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	settingsRepo := persistence.NewGormUserSettingsRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo)
	settingsService := identityapp.NewSettingsService(settingsRepo, userRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	itemService := catalogapp.NewItemService(itemRepo)
	orderService := tradeapp.NewOrderService(orderRepo, customerRepo, itemRepo)
	inboundService := tradeapp.NewInboundService(inboundRepo, supplierRepo, itemRepo)
	excelService := integrationapp.NewExcelService(orderRepo, customerRepo, itemRepo)
	databaseService := integrationapp.NewDatabaseService(persistence.NewRawSQLExecutor(db.DB))
	syncService := integrationapp.NewSyncService(
		cfg.Legacy.DatabasePath,
		legacy.NewRegistry(log),
		orderRepo,
		customerRepo,
		itemRepo,
		log,
	)

	// Seed the initial administrator account
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdminUser(seedCtx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		cancelSeed()
		log.Fatal("Failed to ensure admin user", zap.Error(err))
	}
	cancelSeed()

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	itemHandler := handler.NewItemHandler(itemService)
	orderHandler := handler.NewOrderHandler(orderService)
	inboundHandler := handler.NewInboundHandler(inboundService)
	excelHandler := handler.NewExcelHandler(excelService)
	databaseHandler := handler.NewDatabaseHandler(databaseService)
	syncHandler := handler.NewSyncHandler(syncService)
	systemHandler := handler.NewSystemHandler(version)

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxy configuration", zap.Error(err))
	}

	middleware.SetupValidator()

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check outside API versioning
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/token",
			"/api/v1/health",
		},
		Logger: log,
	}))

	// Login attempts get a tighter budget than the global limiter.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/token", middleware.AuthRateLimit(loginLimiter), authHandler.Login)
	authRoutes.GET("/validate", authHandler.Validate)
	r.Register(authRoutes)

	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.GET("/me", authHandler.Me)
	userRoutes.PUT("/me", userHandler.UpdateProfile)
	userRoutes.POST("", middleware.AdminRequired(), userHandler.Create)
	userRoutes.GET("", middleware.AdminRequired(), userHandler.List)
	userRoutes.GET("/:id", middleware.AdminRequired(), userHandler.GetByID)
	userRoutes.PUT("/:id", middleware.AdminRequired(), userHandler.Update)
	userRoutes.DELETE("/:id", middleware.AdminRequired(), userHandler.Delete)
	r.Register(userRoutes)

	settingsRoutes := router.NewDomainGroup("settings", "/settings")
	settingsRoutes.GET("/system", settingsHandler.Get)
	settingsRoutes.PUT("/system", settingsHandler.UpdateSystem)
	settingsRoutes.PUT("/security", settingsHandler.UpdateSecurity)
	settingsRoutes.PUT("/password", settingsHandler.ChangePassword)
	r.Register(settingsRoutes)

	customerRoutes := router.NewDomainGroup("customers", "/customers")
	customerRoutes.POST("", customerHandler.Create)
	customerRoutes.GET("", customerHandler.List)
	customerRoutes.GET("/:id", customerHandler.GetByID)
	customerRoutes.GET("/code/:code", customerHandler.GetByCode)
	customerRoutes.PUT("/:id", customerHandler.Update)
	customerRoutes.DELETE("/:id", customerHandler.Delete)
	r.Register(customerRoutes)

	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers")
	supplierRoutes.POST("", supplierHandler.Create)
	supplierRoutes.GET("", supplierHandler.List)
	supplierRoutes.GET("/:id", supplierHandler.GetByID)
	supplierRoutes.GET("/code/:code", supplierHandler.GetByCode)
	supplierRoutes.PUT("/:id", supplierHandler.Update)
	supplierRoutes.DELETE("/:id", supplierHandler.Delete)
	r.Register(supplierRoutes)

	itemRoutes := router.NewDomainGroup("items", "/items")
	itemRoutes.POST("", itemHandler.Create)
	itemRoutes.GET("", itemHandler.List)
	itemRoutes.GET("/:id", itemHandler.GetByID)
	itemRoutes.GET("/code/:code", itemHandler.GetByCode)
	itemRoutes.PUT("/:id", itemHandler.Update)
	itemRoutes.DELETE("/:id", itemHandler.Delete)
	r.Register(itemRoutes)

	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.POST("", orderHandler.Create)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.GET("/number/:number", orderHandler.GetByNumber)
	orderRoutes.PUT("/:id", orderHandler.Update)
	orderRoutes.DELETE("/:id", orderHandler.Delete)
	orderRoutes.POST("/:id/items", orderHandler.AddItem)
	orderRoutes.DELETE("/:id/items/:itemId", orderHandler.RemoveItem)
	r.Register(orderRoutes)

	inboundRoutes := router.NewDomainGroup("inbounds", "/inbounds")
	inboundRoutes.POST("", inboundHandler.Create)
	inboundRoutes.GET("", inboundHandler.List)
	inboundRoutes.GET("/:id", inboundHandler.GetByID)
	inboundRoutes.PUT("/:id", inboundHandler.Update)
	inboundRoutes.DELETE("/:id", inboundHandler.Delete)
	inboundRoutes.POST("/:id/arrival", inboundHandler.RecordArrival)
	r.Register(inboundRoutes)

	excelRoutes := router.NewDomainGroup("excel", "/excel")
	excelRoutes.POST("/upload-order", excelHandler.ImportOrders)
	excelRoutes.GET("/generate-template", excelHandler.DownloadTemplate)
	r.Register(excelRoutes)

	dbRoutes := router.NewDomainGroup("db", "/db")
	dbRoutes.Use(middleware.AdminRequired())
	dbRoutes.GET("/tables", databaseHandler.ListTables)
	dbRoutes.GET("/tables/:table/schema", databaseHandler.TableSchema)
	dbRoutes.POST("/query", databaseHandler.Query)
	dbRoutes.POST("/update", databaseHandler.Update)
	r.Register(dbRoutes)

	syncRoutes := router.NewDomainGroup("legacy", "/legacy")
	syncRoutes.Use(middleware.AdminRequired())
	syncRoutes.POST("/export-orders", syncHandler.ExportOrders)
	syncRoutes.POST("/import-orders", syncHandler.ImportOrders)
	syncRoutes.POST("/export-master", syncHandler.ExportMaster)
	syncRoutes.GET("/jobs", syncHandler.ListJobs)
	syncRoutes.GET("/jobs/:id", syncHandler.GetJob)
	r.Register(syncRoutes)

	systemRoutes := router.NewDomainGroup("system", "/")
	systemRoutes.GET("/health", systemHandler.Health)
	r.Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
