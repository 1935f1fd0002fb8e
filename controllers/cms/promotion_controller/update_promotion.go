package promotion_controller

import (
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdatePromotion godoc
// @Summary Update a promotion
// @Description Update promotion fields by ID, including the is_active toggle. The code itself is immutable.
// @Tags CMS - Promotions
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID (UUID)"
// @Param promotion body models.UpdatePromotionRequest true "Promotion update fields"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/promotions/{id} [patch]
func UpdatePromotion(c *gin.Context) {
	// Step 1: Parse and validate promotion ID
	idParam := c.Param("id")
	promotionID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid promotion ID"))
		return
	}

	var input models.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Find existing promotion
	var promotion models.Promotion
	if err := config.Gorm.WithContext(ctx).
		First(&promotion, "id = ?", promotionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Promotion not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Build update map (only non-nil fields)
	updates := make(map[string]interface{})

	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DiscountPercent != nil {
		updates["discount_percent"] = *input.DiscountPercent
	}
	if input.DiscountAmount != nil {
		updates["discount_amount"] = *input.DiscountAmount
	}
	if input.ValidFrom != nil {
		updates["valid_from"] = *input.ValidFrom
	}
	if input.ValidTo != nil {
		updates["valid_to"] = *input.ValidTo
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.SKUs != nil {
		updates["skus"] = models.TagsList(*input.SKUs)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	// Step 4: Validate resulting window
	newFrom := promotion.ValidFrom
	newTo := promotion.ValidTo
	if input.ValidFrom != nil {
		newFrom = *input.ValidFrom
	}
	if input.ValidTo != nil {
		newTo = *input.ValidTo
	}
	if !newTo.After(newFrom) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "valid_to must be after valid_from"))
		return
	}

	// Step 5: Update promotion
	if err := config.Gorm.WithContext(ctx).
		Model(&promotion).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update promotion"))
		return
	}

	// Step 6: Reload
	if err := config.Gorm.WithContext(ctx).
		First(&promotion, "id = ?", promotionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload promotion"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion updated successfully", promotion))
}
