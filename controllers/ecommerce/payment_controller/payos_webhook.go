package payment_controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

// PayOSWebhook godoc
// @Summary PayOS payment notification webhook
// @Description Receives signed payment notifications from PayOS. Verifies the HMAC signature, resolves the order via the stored order-code mapping and marks it paid or failed.
// @Tags User - Payments
// @Accept json
// @Produce json
// @Param payload body models.PayOSWebhookPayload true "Signed notification"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload or signature"
// @Router /api/v1/payments/payos/webhook [post]
func PayOSWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read payload"))
		return
	}

	// The signature covers the raw data object, so verify against the
	// generic decoding before binding typed fields.
	var envelope struct {
		Code      string         `json:"code"`
		Desc      string         `json:"desc"`
		Data      map[string]any `json:"data"`
		Signature string         `json:"signature"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payload"))
		return
	}

	if !getPayOSClient().VerifyWebhookSignature(envelope.Data, envelope.Signature) {
		log.Printf("[payments.payos.webhook] ⚠️ signature mismatch")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid signature"))
		return
	}

	var payload models.PayOSWebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orderIDStr, err := config.RedisClient.Get(ctx, orderCodeKey(payload.Data.OrderCode)).Result()
	if err != nil {
		log.Printf("[payments.payos.webhook] ⚠️ unknown order code=%d", payload.Data.OrderCode)
		// Acknowledge anyway; PayOS retries delivery on non-200s and the
		// mapping will not reappear.
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification ignored", nil))
		return
	}

	if payload.Code == "00" {
		now := time.Now()
		if err := config.Gorm.WithContext(ctx).Exec(`
			UPDATE orders
			SET payment_status = 'paid',
			    status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END,
			    confirmed_at = COALESCE(confirmed_at, ?),
			    updated_at = NOW()
			WHERE id = ?
		`, now, orderIDStr).Error; err != nil {
			log.Printf("[payments.payos.webhook] ERROR mark paid failed order=%s err=%v", orderIDStr, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to process notification"))
			return
		}

		config.RedisClient.Del(ctx, retryCounterKey(orderIDStr), orderCodeKey(payload.Data.OrderCode))
		log.Printf("[payments.payos.webhook] ✅ order paid order=%s code=%d amount=%d ref=%s",
			orderIDStr, payload.Data.OrderCode, payload.Data.Amount, payload.Data.Reference)
	} else {
		if err := config.Gorm.WithContext(ctx).Exec(`
			UPDATE orders SET payment_status = 'failed', updated_at = NOW() WHERE id = ? AND payment_status <> 'paid'
		`, orderIDStr).Error; err != nil {
			log.Printf("[payments.payos.webhook] ERROR mark failed errored order=%s err=%v", orderIDStr, err)
		}
		log.Printf("[payments.payos.webhook] ⚠️ payment failed order=%s code=%d desc=%s",
			orderIDStr, payload.Data.OrderCode, payload.Desc)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification processed", nil))
}
