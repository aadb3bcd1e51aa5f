package routes

import (
	"github.com/Merchantry/backoffice/controllers"
	"github.com/gin-gonic/gin"
)

// initLookupRoutes registers the lists backing the autocomplete fields
func initLookupRoutes(group *gin.RouterGroup) {
	group.GET("/products", controllers.ListProducts)
	group.GET("/products/barcode/:code", controllers.GetProductByBarcode)
	group.GET("/categories", controllers.ListCategories)

	suppliers := group.Group("/suppliers")
	{
		suppliers.GET("", controllers.ListSuppliers)
		suppliers.POST("", controllers.CreateSupplier)
		suppliers.PUT("/:id", controllers.UpdateSupplier)
	}
}
