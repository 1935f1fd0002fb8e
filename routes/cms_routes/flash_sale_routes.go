package cms_routes

import (
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/cms/flash_sale_controller"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupFlashSaleRoutes(rg *gin.RouterGroup) {
	flashSales := rg.Group("/flash-sales")
	flashSales.Use(middleware.AdminAuthMiddleware())
	{
		flashSales.GET("", flash_sale_controller.GetFlashSales)
		flashSales.GET("/:id", flash_sale_controller.GetFlashSaleByID)

		flashSales.POST("", flash_sale_controller.CreateFlashSale)
		flashSales.PATCH("/:id", flash_sale_controller.UpdateFlashSale)
		flashSales.DELETE("/:id", flash_sale_controller.DeleteFlashSale)
	}
}
