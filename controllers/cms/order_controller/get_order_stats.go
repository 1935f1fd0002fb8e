package order_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrderStats godoc
// @Summary Get order stats (CMS)
// @Description Returns all-time total orders + per-status breakdown, plus current month total and % change vs last month.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	log.Printf("[admin.order.stats] start path=%s method=%s", c.FullPath(), c.Request.Method)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// All-time totals + all-time breakdown, but month-over-month change from monthly totals
	q := `
		WITH
		all_time AS (
			SELECT
				COUNT(*)::int AS total,
				COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)::int   AS pending,
				COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0)::int AS confirmed,
				COALESCE(SUM(CASE WHEN status = 'shipped' THEN 1 ELSE 0 END), 0)::int   AS shipped,
				COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0)::int AS delivered,
				COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0)::int AS cancelled
			FROM orders
		),
		cur AS (
			SELECT COUNT(*)::int AS total
			FROM orders
			WHERE created_at >= date_trunc('month', NOW())
			  AND created_at <  date_trunc('month', NOW()) + INTERVAL '1 month'
		),
		prev AS (
			SELECT COUNT(*)::int AS total
			FROM orders
			WHERE created_at >= date_trunc('month', NOW()) - INTERVAL '1 month'
			  AND created_at <  date_trunc('month', NOW())
		)
		SELECT
			all_time.total,
			cur.total,
			prev.total,
			all_time.pending,
			all_time.confirmed,
			all_time.shipped,
			all_time.delivered,
			all_time.cancelled
		FROM all_time, cur, prev;
	`

	var totalAllTime, curTotal, prevTotal int
	var pending, confirmed, shipped, delivered, cancelled int

	err := config.Gorm.WithContext(ctx).Raw(q).Row().Scan(
		&totalAllTime,
		&curTotal,
		&prevTotal,
		&pending,
		&confirmed,
		&shipped,
		&delivered,
		&cancelled,
	)
	if err != nil {
		log.Printf("[admin.order.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	var changePct *float64
	if prevTotal > 0 {
		v := (float64(curTotal-prevTotal) / float64(prevTotal)) * 100
		v = math.Round(v*10) / 10
		changePct = &v
	} else {
		// If last month was 0, percent change is undefined
		changePct = nil
	}

	res := models.OrderStatsResponse{
		TotalOrders:                totalAllTime,
		ChangePercentFromLastMonth: changePct,
		CurrentMonthTotal:          curTotal,
		LastMonthTotal:             prevTotal,
		Pending: models.OrderStatsBreakdown{
			Count:       pending,
			Description: "Awaiting confirmation",
		},
		Confirmed: models.OrderStatsBreakdown{
			Count:       confirmed,
			Description: "Being prepared",
		},
		Shipped: models.OrderStatsBreakdown{
			Count:       shipped,
			Description: "On the way",
		},
		Delivered: models.OrderStatsBreakdown{
			Count:       delivered,
			Description: "Successfully delivered",
		},
		Cancelled: models.OrderStatsBreakdown{
			Count:       cancelled,
			Description: "Cancelled orders",
		},
	}

	log.Printf("[admin.order.stats] done totalAllTime=%d cur=%d prev=%d changePct=%v pending=%d confirmed=%d shipped=%d delivered=%d cancelled=%d",
		totalAllTime, curTotal, prevTotal, changePct, pending, confirmed, shipped, delivered, cancelled)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Order stats retrieved successfully",
		res,
	))
}
