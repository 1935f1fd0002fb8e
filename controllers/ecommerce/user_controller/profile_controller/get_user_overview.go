package profile_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/middleware"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserOverviewResponse summarizes a customer's activity for the account page.
type UserOverviewResponse struct {
	TotalOrders     int        `json:"total_orders"`
	PendingOrders   int        `json:"pending_orders"`
	DeliveredOrders int        `json:"delivered_orders"`
	TotalSpent      float64    `json:"total_spent"`
	LastOrderAt     *time.Time `json:"last_order_at,omitempty"`
}

// GetUserOverview godoc
// @Summary Get account overview for the current user
// @Description Returns order counts and lifetime spend (cancelled orders excluded from spend).
// @Tags User - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=UserOverviewResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/user/overview [get]
func GetUserOverview(c *gin.Context) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	query := `
		SELECT
			COUNT(*)::int AS total_orders,
			COUNT(*) FILTER (WHERE status = 'pending')::int AS pending_orders,
			COUNT(*) FILTER (WHERE status = 'delivered')::int AS delivered_orders,
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0) AS total_spent,
			MAX(created_at) AS last_order_at
		FROM orders
		WHERE user_id = ?
	`

	var overview UserOverviewResponse
	if err := config.Gorm.WithContext(ctx).Raw(query, userID).Scan(&overview).Error; err != nil {
		log.Printf("[user.overview] ERROR query failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch overview"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overview retrieved successfully", overview))
}
