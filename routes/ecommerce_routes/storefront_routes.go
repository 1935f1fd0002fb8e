package ecommerce_routes

import (
	store_flash_sale "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/ecommerce/flash_sale_controller"
	store_product "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/ecommerce/product_controller"
	store_promotion "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/ecommerce/promotion_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes wires the public customer-facing endpoints.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	store.GET("/flash-sale", store_flash_sale.GetActiveFlashSale)

	promotions := store.Group("/promotions")
	{
		promotions.GET("", store_promotion.GetActivePromotions)
		promotions.POST("/validate", store_promotion.ValidatePromotion)
	}
}
