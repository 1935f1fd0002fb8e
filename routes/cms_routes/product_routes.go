package cms_routes

import (
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/cms/product_controller"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	{
		product.GET("", product_controller.GetProducts)
		product.GET("/stats", product_controller.GetProductStats)
		product.GET("/search", product_controller.SearchProducts)
		product.GET("/:id", product_controller.GetProductByID)

		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)

		// Cloudinary cleanup for aborted uploads
		product.POST("/cleanup-folder", product_controller.CleanupOrphanedFolder)
	}
}
