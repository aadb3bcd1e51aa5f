package routes

import (
	"github.com/Merchantry/backoffice/controllers"
	"github.com/gin-gonic/gin"
)

// initPromotionRoutes registers the promotion and pricing rule routes
func initPromotionRoutes(group *gin.RouterGroup) {
	promotions := group.Group("/promotions")
	{
		promotions.GET("", controllers.ListPromotions)
		promotions.POST("", controllers.CreatePromotion)
		promotions.GET("/:id", controllers.GetPromotion)
		promotions.PUT("/:id", controllers.UpdatePromotion)
		promotions.DELETE("/:id", controllers.DeletePromotion)
	}

	rules := group.Group("/pricing-rules")
	{
		rules.GET("", controllers.ListPricingRules)
		rules.POST("", controllers.CreatePricingRule)
		rules.GET("/:id", controllers.GetPricingRule)
		rules.PUT("/:id", controllers.UpdatePricingRule)
		rules.DELETE("/:id", controllers.DeletePricingRule)
	}
}
