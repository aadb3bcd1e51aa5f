package routes

import (
	"github.com/Merchantry/backoffice/controllers"
	"github.com/gin-gonic/gin"
)

// initPurchaseOrderRoutes registers the purchase order and template routes
func initPurchaseOrderRoutes(group *gin.RouterGroup) {
	orders := group.Group("/purchase-orders")
	{
		orders.GET("", controllers.ListPurchaseOrders)
		orders.POST("", controllers.CreatePurchaseOrder)
		orders.GET("/export", controllers.ExportPurchaseOrdersExcel)
		orders.GET("/:id", controllers.GetPurchaseOrder)
		orders.PUT("/:id", controllers.UpdatePurchaseOrder)
		orders.DELETE("/:id", controllers.DeletePurchaseOrder)
		orders.PATCH("/:id/status", controllers.UpdatePurchaseOrderStatus)
		orders.POST("/:id/receive", controllers.ReceivePurchaseOrder)
		orders.POST("/:id/invoice", controllers.AttachPurchaseOrderInvoice)
		orders.GET("/:id/pdf", controllers.DownloadPurchaseOrderPDF)
		orders.POST("/:id/send", controllers.SendPurchaseOrderToSupplier)
	}

	templates := group.Group("/purchase-order-templates")
	{
		templates.GET("", controllers.ListPurchaseOrderTemplates)
		templates.POST("", controllers.CreatePurchaseOrderTemplate)
		templates.GET("/:id", controllers.GetPurchaseOrderTemplate)
		templates.DELETE("/:id", controllers.DeletePurchaseOrderTemplate)
		templates.POST("/:id/create-order", controllers.CreateOrderFromTemplate)
	}
}
