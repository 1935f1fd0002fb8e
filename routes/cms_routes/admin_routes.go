package cms_routes

import (
	admin_auth_controller "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/cms/admin_controller/auth"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires the admin auth endpoints at /admin.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// Public
	admin.POST("/login", admin_auth_controller.AdminLogin)

	// Protected
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth_controller.AdminLogout)
		protected.GET("/me", admin_auth_controller.GetAdminMe)
	}
}
