package ecommerce_routes

import (
	user_payment "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/ecommerce/payment_controller"
	user_order "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/ecommerce/user_controller/order_controller"
	user_profile "github.com/HTeam-Ecommerce/hteam-commerce-backend/controllers/ecommerce/user_controller/profile_controller"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes wires the authenticated customer endpoints plus the PayOS
// webhook (which PayOS calls unauthenticated; its HMAC is the auth).
func SetupUserRoutes(router *gin.RouterGroup) {
	router.POST("/payments/payos/webhook", user_payment.PayOSWebhook)

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me", user_profile.GetMe)
		user.GET("/overview", user_profile.GetUserOverview)
		user.PATCH("/profile", user_profile.UpdateProfile)

		user.POST("/orders", user_order.CreateOrder)
		user.GET("/orders", user_order.GetOrders)
		user.GET("/orders/:id", user_order.GetOrderDetails)

		user.POST("/payments/payos/checkout", user_payment.PayOSCheckout)
	}
}
