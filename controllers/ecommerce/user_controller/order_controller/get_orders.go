package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOrders godoc
// @Summary Get order history for the current user
// @Description Returns the user's orders newest-first with item counts.
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/user/orders [get]
func GetOrders(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	// Storefront pages are 1-indexed on the wire
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	req := pagination.PageRequest{Index0: page - 1, Size: limit}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var total int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[user.orders] ERROR count failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	dataSQL := `
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.payment_status,
			o.total_amount,
			COUNT(oi.id)::int AS item_count,
			o.created_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id, o.order_number, o.status, o.payment_status, o.total_amount, o.created_at
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`

	out := make([]models.OrderHistoryResponse, 0)
	if err := config.Gorm.WithContext(ctx).
		Raw(dataSQL, userID, req.Size, req.Offset()).
		Scan(&out).Error; err != nil {
		log.Printf("[user.orders] ERROR data query failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	meta := &models.Pagination{
		CurrentPage:   req.Index0,
		PageSize:      req.Size,
		TotalElements: int(total),
		TotalPages:    int(math.Ceil(float64(total) / float64(req.Size))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", out, meta))
}
