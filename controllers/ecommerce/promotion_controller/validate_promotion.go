package promotion_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ValidatePromotion godoc
// @Summary Validate a promotion code against a cart line
// @Description Checks whether a code is live and applies to the given SKU, and returns the computed discount and final price. A non-applicable code still returns 200 with a reason.
// @Tags Storefront - Promotions
// @Accept json
// @Produce json
// @Param request body models.ValidatePromotionRequest true "Code, SKU and line price"
// @Success 200 {object} models.ApiResponse{data=models.ValidatePromotionResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/store/promotions/validate [post]
func ValidatePromotion(c *gin.Context) {
	var req models.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var promotion models.Promotion
	if err := config.Gorm.WithContext(ctx).
		Where("code = ?", code).
		First(&promotion).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion checked", models.ValidatePromotionResponse{
				Code:       code,
				Applicable: false,
				FinalPrice: req.Price,
				Reason:     "Promotion code not found",
			}))
			return
		}
		log.Printf("[store.promotions.validate] ERROR lookup failed code=%s err=%v", code, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to validate promotion"))
		return
	}

	// Checkout honours the admin toggle, unlike the carousel.
	now := time.Now()
	if !promotion.IsLive(now) {
		reason := "Promotion is not active"
		if !promotion.InWindow(now) {
			reason = "Promotion is outside its validity window"
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion checked", models.ValidatePromotionResponse{
			Code:       code,
			Applicable: false,
			FinalPrice: req.Price,
			Reason:     reason,
		}))
		return
	}

	if !promotion.AppliesTo(req.SKU) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion checked", models.ValidatePromotionResponse{
			Code:       code,
			Applicable: false,
			FinalPrice: req.Price,
			Reason:     "Promotion does not apply to this product",
		}))
		return
	}

	discount := promotion.DiscountOn(req.Price)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion is applicable", models.ValidatePromotionResponse{
		Code:       code,
		Applicable: true,
		Discount:   discount,
		FinalPrice: req.Price - discount,
	}))
}
