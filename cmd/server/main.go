package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/docs"
	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/database"
	"rtrw-admin-svc/internal/handler"
	"rtrw-admin-svc/internal/middleware"
	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/repository"
	"rtrw-admin-svc/internal/scheduler"
	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/internal/store"
	"rtrw-admin-svc/pkg/logger"
)

// @title RT/RW Admin Service API
// @version 1.0
// @description RESTful API for neighborhood association administration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "RT/RW Admin Service API"
	docs.SwaggerInfo.Description = "RESTful API for neighborhood association administration"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting RT/RW Admin Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize collections
	residentCollection := store.NewCollection[models.Resident](db.DB, models.Resident{}.TableName())
	mailCollection := store.NewCollection[models.MailRequest](db.DB, models.MailRequest{}.TableName())
	financeCollection := store.NewCollection[models.FinanceRecord](db.DB, models.FinanceRecord{}.TableName())
	announcementCollection := store.NewCollection[models.Announcement](db.DB, models.Announcement{}.TableName())
	activityCollection := store.NewCollection[models.Activity](db.DB, models.Activity{}.TableName())
	securityCollection := store.NewCollection[models.SecurityReport](db.DB, models.SecurityReport{}.TableName())
	reportCollection := store.NewCollection[models.Report](db.DB, models.Report{}.TableName())
	userCollection := store.NewCollection[models.User](db.DB, models.User{}.TableName())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT, appLogger)
	residentService := service.NewResidentService(residentCollection)
	mailService := service.NewMailService(mailCollection)
	financeService := service.NewFinanceService(financeCollection)
	announcementService := service.NewAnnouncementService(announcementCollection)
	activityService := service.NewActivityService(activityCollection)
	securityService := service.NewSecurityService(securityCollection)
	reportService := service.NewReportService(reportCollection)
	userService := service.NewUserService(userCollection, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(
		router,
		authService,
		residentService,
		mailService,
		financeService,
		announcementService,
		activityService,
		securityService,
		reportService,
		userService,
		dashboardService,
		cfg.JWT,
		appLogger,
	)

	// Start the monthly finance recap scheduler
	recapScheduler := scheduler.NewFinanceRecapScheduler(dashboardRepo, schedulerLogRepo, appLogger, cfg.Scheduler.RecapCronExpression)
	if err := recapScheduler.Start(); err != nil {
		appLogger.WithError(err).Fatal("Failed to start finance recap scheduler")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler before draining requests
	recapScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithError(err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
