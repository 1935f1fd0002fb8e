package cms_routes

import (
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/cms/promotion_controller"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupPromotionRoutes(rg *gin.RouterGroup) {
	promotions := rg.Group("/promotions")
	promotions.Use(middleware.AdminAuthMiddleware())
	{
		promotions.GET("", promotion_controller.GetPromotions)

		promotions.POST("", promotion_controller.CreatePromotion)
		promotions.PATCH("/:id", promotion_controller.UpdatePromotion)
		promotions.DELETE("/:id", promotion_controller.DeletePromotion)
	}
}
