package flash_sale_controller

import (
	"log"
	"net/http"
	"time"

	flash_sale_cache "github.com/HTeam-Ecommerce/hteam-commerce-backend/cache"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetActiveFlashSale godoc
// @Summary Get the currently running flash sale
// @Description Returns the flash sale whose window covers the current time, with per-item flash price, clamped discount and floored remaining quantity. Served from a short-lived cache.
// @Tags Storefront - Flash Sale
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FlashSaleResponse}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/store/flash-sale [get]
func GetActiveFlashSale(c *gin.Context) {
	if sale, ok := flash_sale_cache.Get(); ok {
		if sale == nil {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "No active flash sale", nil))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Flash sale fetched successfully", sale))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	now := time.Now()

	var sale models.FlashSale
	err := config.Gorm.WithContext(ctx).
		Preload("Items").
		Where("start_time <= ? AND end_time >= ?", now, now).
		Order("start_time DESC").
		First(&sale).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Cache the miss too, so an idle storefront doesn't hammer the DB.
			flash_sale_cache.Set(nil)
			c.JSON(http.StatusOK, models.SuccessResponse(c, "No active flash sale", nil))
			return
		}
		log.Printf("[store.flashsale] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch flash sale"))
		return
	}

	response := buildFlashSaleResponse(&sale)
	flash_sale_cache.Set(response)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flash sale fetched successfully", response))
}

// buildFlashSaleResponse resolves the customer-facing derived fields:
// remaining quantity floored at 0 and discount clamped to [0, 100].
func buildFlashSaleResponse(sale *models.FlashSale) *models.FlashSaleResponse {
	items := make([]models.FlashSaleItemResponse, 0, len(sale.Items))
	for i := range sale.Items {
		item := &sale.Items[i]
		regular := item.Option.Availability.RegularPrice

		items = append(items, models.FlashSaleItemResponse{
			SKU:             item.SKU,
			FlashPrice:      item.FlashPrice,
			RegularPrice:    regular,
			DiscountPercent: pricing.DisplayDiscountPercent(regular, item.FlashPrice),
			Remaining:       item.DisplayRemaining(),
			SoldPercent:     item.SoldPercent(),
			LimitQuantity:   item.LimitQuantity,
			EndTime:         item.EndTime,
			Option:          item.Option,
		})
	}

	return &models.FlashSaleResponse{
		ID:        sale.ID,
		Name:      sale.Name,
		StartTime: sale.StartTime,
		EndTime:   sale.EndTime,
		Status:    sale.Status,
		Items:     items,
	}
}
