package payment_controller

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	payosClient *services.PayOSClient
	payosOnce   sync.Once
)

func getPayOSClient() *services.PayOSClient {
	payosOnce.Do(func() {
		payosClient = services.NewPayOSClient()
	})
	return payosClient
}

func retryCounterKey(orderID string) string {
	return "payos:retries:" + orderID
}

func orderCodeKey(orderCode int64) string {
	return fmt.Sprintf("payos:ordercode:%d", orderCode)
}

// PayOSCheckout godoc
// @Summary Create a PayOS payment link for an order
// @Description Creates a hosted checkout page for a pending payos order. Each order allows a limited number of checkout attempts, tracked in Redis.
// @Tags User - Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PayOSCheckoutRequest true "Order ID and redirect URLs"
// @Success 200 {object} models.ApiResponse{data=models.PayOSCheckoutResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 429 {object} models.ApiResponse "Too many payment attempts"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/user/payments/payos/checkout [post]
func PayOSCheckout(c *gin.Context) {
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

	var req models.PayOSCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var order models.Order
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		}
		return
	}

	if order.PaymentMethod != "payos" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order is not payable via PayOS"))
		return
	}
	if order.PaymentStatus == "paid" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order is already paid"))
		return
	}

	// Count this attempt before calling out, so a crashed request still burns
	// a retry instead of granting a free one.
	retries, err := config.RedisClient.Incr(ctx, retryCounterKey(order.ID.String())).Result()
	if err != nil {
		log.Printf("[payments.payos] ERROR retry counter failed order=%s err=%v", order.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start checkout"))
		return
	}
	if retries == 1 {
		config.RedisClient.Expire(ctx, retryCounterKey(order.ID.String()), 24*time.Hour)
	}
	if retries > models.MaxPaymentRetries {
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c,
			fmt.Sprintf("Payment attempt limit reached (%d). Please place a new order.", models.MaxPaymentRetries)))
		return
	}

	var items []models.OrderItem
	if err := config.Gorm.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order items"))
		return
	}

	linkItems := make([]services.PaymentLinkItem, 0, len(items))
	for _, item := range items {
		linkItems = append(linkItems, services.PaymentLinkItem{
			Name:     item.ProductName + " " + item.OptionValue,
			Quantity: item.Quantity,
			Price:    int64(item.UnitPrice),
		})
	}

	// PayOS wants a numeric order code unique per attempt
	orderCode := time.Now().UnixMilli()
	amount := int64(order.TotalAmount)

	link, err := getPayOSClient().CreatePaymentLink(ctx, services.PaymentLinkRequest{
		OrderCode:   orderCode,
		Amount:      amount,
		Description: order.OrderNumber,
		Items:       linkItems,
		ReturnURL:   req.ReturnURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		log.Printf("[payments.payos] ERROR create link failed order=%s err=%v", order.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create payment link"))
		return
	}

	// The webhook only carries the numeric code; remember which order it maps to
	if err := config.RedisClient.Set(ctx, orderCodeKey(orderCode), order.ID.String(), 24*time.Hour).Err(); err != nil {
		log.Printf("[payments.payos] ERROR ordercode mapping failed order=%s code=%d err=%v", order.ID, orderCode, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create payment link"))
		return
	}

	log.Printf("[payments.payos] ✅ link created order=%s code=%d attempt=%d/%d",
		order.ID, orderCode, retries, models.MaxPaymentRetries)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment link created", models.PayOSCheckoutResponse{
		OrderID:        order.ID.String(),
		PaymentLinkID:  link.PaymentLinkID,
		CheckoutURL:    link.CheckoutURL,
		QRCode:         link.QRCode,
		Amount:         link.Amount,
		RetriesUsed:    int(retries),
		RetriesAllowed: models.MaxPaymentRetries,
	}))
}
