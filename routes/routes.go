package routes

import (
	"os"

	"github.com/Merchantry/backoffice/controllers"
	"github.com/Merchantry/backoffice/middleware"
	"github.com/Merchantry/backoffice/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(middleware.PrometheusMiddleware())

	// Setup session middleware
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "merchantry-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("merchantry", store))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/v1")
	{
		api.POST("/admin/login", controllers.AdminLogin)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("/admin/logout", controllers.AdminLogout)

			initPromotionRoutes(admin)
			initPurchaseOrderRoutes(admin)
			initLookupRoutes(admin)

			admin.GET("/license-audit", controllers.ListLicenseAuditLogs)
			admin.GET("/license-audit/export", controllers.ExportLicenseAuditExcel)
		}
	}

	return router
}
