package cms_routes

import (
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/cms/order_controller"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AdminAuthMiddleware())
	{
		orders.GET("", order_controller.GetOrders)
		orders.GET("/stats", order_controller.GetOrderStats)
		orders.GET("/search", order_controller.SearchOrders)
		orders.GET("/:id", order_controller.GetOrderDetailsByID)

		orders.PATCH("/:id/status", order_controller.UpdateOrderStatus)

		// Invoice PDF (download + email)
		orders.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
		orders.POST("/:id/invoice/send", order_controller.SendOrderInvoicePDF)
	}
}
