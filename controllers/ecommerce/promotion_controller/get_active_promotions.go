package promotion_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

// GetActivePromotions godoc
// @Summary Get promotions for the storefront carousel
// @Description Returns promotions whose validity window covers the current time. The carousel goes by the window alone and does not consult the admin is_active toggle.
// @Tags Storefront - Promotions
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.PromotionView}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/store/promotions [get]
func GetActivePromotions(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	now := time.Now()

	var promotions []models.Promotion
	if err := config.Gorm.WithContext(ctx).
		Where("valid_from <= ? AND valid_to >= ?", now, now).
		Order("valid_from DESC").
		Find(&promotions).Error; err != nil {
		log.Printf("[store.promotions] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch promotions"))
		return
	}

	views := make([]models.PromotionView, 0, len(promotions))
	for _, p := range promotions {
		// Window check restated in Go so clock skew between app and DB
		// cannot let an expired promotion slip through.
		if !p.InWindow(now) {
			continue
		}
		views = append(views, models.PromotionView{
			Code:            p.Code,
			Description:     p.Description,
			DiscountPercent: p.DiscountPercent,
			DiscountAmount:  p.DiscountAmount,
			ValidFrom:       p.ValidFrom,
			ValidTo:         p.ValidTo,
			SKUs:            p.SKUs,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotions fetched successfully", views))
}
