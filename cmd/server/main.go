package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/auth"
	"github.com/farmledger/api/internal/config"
	"github.com/farmledger/api/internal/database"
	"github.com/farmledger/api/internal/handlers"
	"github.com/farmledger/api/internal/importer"
	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/report"
	"github.com/farmledger/api/internal/repository"
	"github.com/farmledger/api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting FarmLedger API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Connect to the database and run migrations
	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository, token issuer and service layers
	store := repository.NewStore(db.DB)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TTLMinutes)*time.Minute)

	userService := services.NewUserService(store, issuer, log)
	farmService := services.NewFarmService(store, log)
	fieldService := services.NewFieldService(store, log)
	cropService := services.NewCropService(store, log)
	fertilizationService := services.NewFertilizationService(store, log)
	plantProtectionService := services.NewPlantProtectionService(store, log)
	cultivationService := services.NewCultivationOperationService(store, log)
	parcelService := services.NewReferenceParcelService(store, log)
	soilService := services.NewSoilMeasurementService(store, log)
	dashboardService := services.NewDashboardService(store, log)
	reportService := report.NewService(store, log)
	gmlImporter := importer.NewGML(store, log)
	csvImporter := importer.NewCSV(store, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	farmHandler := handlers.NewFarmHandler(farmService)
	fieldHandler := handlers.NewFieldHandler(fieldService)
	cropHandler := handlers.NewCropHandler(cropService)
	fertilizationHandler := handlers.NewFertilizationHandler(fertilizationService)
	plantProtectionHandler := handlers.NewPlantProtectionHandler(plantProtectionService)
	cultivationHandler := handlers.NewCultivationOperationHandler(cultivationService)
	parcelHandler := handlers.NewReferenceParcelHandler(parcelService)
	soilHandler := handlers.NewSoilMeasurementHandler(soilService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	uploadHandler := handlers.NewUploadHandler(gmlImporter, csvImporter)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		authed := v1.Group("")
		authed.Use(middleware.Auth(issuer))
		{
			farms := authed.Group("/farms")
			{
				farms.GET("/user", farmHandler.ListByUser)
				farms.GET("/user/list", farmHandler.ListRefs)
				farms.GET("/:id", farmHandler.Get)
				farms.POST("", farmHandler.Create)
				farms.PUT("/:id", farmHandler.Update)
				farms.DELETE("/:id", farmHandler.Delete)
			}

			fields := authed.Group("/fields")
			{
				fields.GET("/soil-types", fieldHandler.SoilTypes)
				fields.GET("/farm/:farmId", fieldHandler.ListByFarm)
				fields.GET("/:id", fieldHandler.Get)
				fields.POST("", fieldHandler.Create)
				fields.PUT("/:id", fieldHandler.Update)
				fields.DELETE("/:id", fieldHandler.Delete)
			}

			crops := authed.Group("/crops")
			{
				crops.GET("/crop-types", cropHandler.CropTypes)
				crops.GET("/user/active", cropHandler.ListActive)
				crops.GET("/field/:fieldId", cropHandler.ListByField)
				crops.GET("/:id", cropHandler.Get)
				crops.POST("", cropHandler.Create)
				crops.PUT("/:id", cropHandler.Update)
				crops.DELETE("/:id", cropHandler.Delete)
			}

			fertilizations := authed.Group("/fertilizations")
			{
				fertilizations.GET("/types", fertilizationHandler.Types)
				fertilizations.GET("/interventions", fertilizationHandler.Interventions)
				fertilizations.GET("/crop/:cropId", fertilizationHandler.ListByCrop)
				fertilizations.GET("/:id", fertilizationHandler.Get)
				fertilizations.POST("", fertilizationHandler.Create)
				fertilizations.PUT("/:id", fertilizationHandler.Update)
				fertilizations.DELETE("/:id", fertilizationHandler.Delete)
			}

			plantProtections := authed.Group("/plant-protections")
			{
				plantProtections.GET("/types", plantProtectionHandler.Types)
				plantProtections.GET("/crop/:cropId", plantProtectionHandler.ListByCrop)
				plantProtections.GET("/:id", plantProtectionHandler.Get)
				plantProtections.POST("", plantProtectionHandler.Create)
				plantProtections.PUT("/:id", plantProtectionHandler.Update)
				plantProtections.DELETE("/:id", plantProtectionHandler.Delete)
			}

			operations := authed.Group("/cultivation-operations")
			{
				operations.GET("/crop/:cropId", cultivationHandler.ListByCrop)
				operations.GET("/:id", cultivationHandler.Get)
				operations.POST("", cultivationHandler.Create)
				operations.PUT("/:id", cultivationHandler.Update)
				operations.DELETE("/:id", cultivationHandler.Delete)
			}

			parcels := authed.Group("/reference-parcels")
			{
				parcels.GET("/field/:fieldId", parcelHandler.ListByField)
				parcels.GET("/:id", parcelHandler.Get)
				parcels.POST("", parcelHandler.Create)
				parcels.PUT("/:id", parcelHandler.Update)
				parcels.DELETE("/:id", parcelHandler.Delete)
			}

			soil := authed.Group("/soil-measurements")
			{
				soil.GET("/field/:fieldId", soilHandler.ListByField)
				soil.GET("/:id", soilHandler.Get)
				soil.POST("", soilHandler.Create)
				soil.PUT("/:id", soilHandler.Update)
				soil.DELETE("/:id", soilHandler.Delete)
			}

			uploads := authed.Group("/uploads")
			{
				uploads.POST("/gml/:farmId", uploadHandler.UploadGML)
				uploads.POST("/csv/:farmId", uploadHandler.UploadCSV)
			}

			reports := authed.Group("/reports/agrotechnical")
			{
				reports.GET("/data/:farmId", reportHandler.Data)
				reports.GET("/html/:farmId", reportHandler.HTML)
				reports.GET("/pdf/:farmId", reportHandler.PDF)
				reports.GET("/excel/:farmId", reportHandler.Excel)
			}

			authed.GET("/home", dashboardHandler.Home)
			authed.GET("/map/:farmId", dashboardHandler.Map)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
