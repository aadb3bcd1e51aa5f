package main

import (
	"log"

	"github.com/Merchantry/backoffice/config"
	"github.com/Merchantry/backoffice/controllers"
	"github.com/Merchantry/backoffice/middleware"
	"github.com/Merchantry/backoffice/routes"
	"github.com/Merchantry/backoffice/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Register Prometheus collectors
	middleware.InitMetrics()

	// Deactivate promotions whose window has passed, daily at midnight
	scheduler := utils.StartPromotionSweep()
	defer scheduler.Stop()

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
