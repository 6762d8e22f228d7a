package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/middleware"
	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	residentService service.ResidentService,
	mailService service.MailService,
	financeService service.FinanceService,
	announcementService service.AnnouncementService,
	activityService service.ActivityService,
	securityService service.SecurityService,
	reportService service.ReportService,
	userService service.UserService,
	dashboardService service.DashboardService,
	jwtCfg config.JWTConfig,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, jwtCfg, logger)
	residentHandler := NewResidentHandler(residentService, logger)
	mailHandler := NewMailHandler(mailService, logger)
	financeHandler := NewFinanceHandler(financeService, logger)
	announcementHandler := NewAnnouncementHandler(announcementService, logger)
	activityHandler := NewActivityHandler(activityService, logger)
	securityHandler := NewSecurityHandler(securityService, logger)
	reportHandler := NewReportHandler(reportService, logger)
	userHandler := NewUserHandler(userService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Public auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		// Everything below requires a valid session
		protected := v1.Group("")
		protected.Use(middleware.RequireAuth(authService, jwtCfg, logger))
		{
			protected.GET("/auth/me", authHandler.Me)

			// Resident routes
			residents := protected.Group("/residents")
			{
				residents.GET("", residentHandler.ListResidents)
				residents.POST("", residentHandler.CreateResident)
				residents.GET("/:id", residentHandler.GetResident)
				residents.PUT("/:id", residentHandler.UpdateResident)
				residents.DELETE("/:id", residentHandler.DeleteResident)
			}

			// Mail request routes
			mails := protected.Group("/mails")
			{
				mails.GET("", mailHandler.ListMails)
				mails.POST("", mailHandler.CreateMail)
				mails.GET("/:id", mailHandler.GetMail)
				mails.PUT("/:id", mailHandler.UpdateMail)
				mails.DELETE("/:id", mailHandler.DeleteMail)
			}

			// Finance routes
			finances := protected.Group("/finances")
			{
				finances.GET("", financeHandler.ListFinances)
				finances.POST("", financeHandler.CreateFinance)
				// export before :id so "export" is not parsed as an id
				finances.GET("/export", financeHandler.ExportFinances)
				finances.GET("/:id", financeHandler.GetFinance)
				finances.PUT("/:id", financeHandler.UpdateFinance)
				finances.DELETE("/:id", financeHandler.DeleteFinance)
			}

			// Announcement routes
			announcements := protected.Group("/announcements")
			{
				announcements.GET("", announcementHandler.ListAnnouncements)
				announcements.POST("", announcementHandler.CreateAnnouncement)
				announcements.GET("/:id", announcementHandler.GetAnnouncement)
				announcements.PUT("/:id", announcementHandler.UpdateAnnouncement)
				announcements.DELETE("/:id", announcementHandler.DeleteAnnouncement)
			}

			// Activity routes
			activities := protected.Group("/activities")
			{
				activities.GET("", activityHandler.ListActivities)
				activities.POST("", activityHandler.CreateActivity)
				activities.GET("/:id", activityHandler.GetActivity)
				activities.PUT("/:id", activityHandler.UpdateActivity)
				activities.DELETE("/:id", activityHandler.DeleteActivity)
			}

			// Security report routes
			securities := protected.Group("/securities")
			{
				securities.GET("", securityHandler.ListSecurityReports)
				securities.POST("", securityHandler.CreateSecurityReport)
				securities.GET("/:id", securityHandler.GetSecurityReport)
				securities.PUT("/:id", securityHandler.UpdateSecurityReport)
				securities.DELETE("/:id", securityHandler.DeleteSecurityReport)
			}

			// Report routes
			reports := protected.Group("/reports")
			{
				reports.GET("", reportHandler.ListReports)
				reports.POST("", reportHandler.CreateReport)
				reports.GET("/:id", reportHandler.GetReport)
				reports.PUT("/:id", reportHandler.UpdateReport)
				reports.DELETE("/:id", reportHandler.DeleteReport)
			}

			// Dashboard routes
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.GetStats)
			}

			// User management, super-admin only
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleSuperAdmin))
			{
				users.GET("", userHandler.ListUsers)
				users.POST("", userHandler.CreateUser)
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "RT/RW Admin Service",
	})
}
