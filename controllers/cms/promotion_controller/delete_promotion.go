package promotion_controller

import (
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletePromotion godoc
// @Summary Delete a promotion
// @Description Delete a promotion by ID
// @Tags CMS - Promotions
// @Produce json
// @Param id path string true "Promotion ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/promotions/{id} [delete]
func DeletePromotion(c *gin.Context) {
	// Step 1: Parse and validate promotion ID
	idParam := c.Param("id")
	promotionID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid promotion ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Ensure promotion exists
	var promotion models.Promotion
	if err := config.Gorm.WithContext(ctx).
		Select("id").
		First(&promotion, "id = ?", promotionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Promotion not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Delete
	if err := config.Gorm.WithContext(ctx).Delete(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete promotion: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion deleted successfully", map[string]string{
		"id": promotionID.String(),
	}))
}
