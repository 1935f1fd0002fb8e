package flash_sale_controller

import (
	"net/http"

	flash_sale_cache "github.com/HTeam-Ecommerce/hteam-commerce-backend/cache"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateFlashSale godoc
// @Summary Update a flash sale
// @Description Update flash sale name, window, or status by ID
// @Tags CMS - Flash Sales
// @Accept json
// @Produce json
// @Param id path string true "Flash sale ID (UUID)"
// @Param flash_sale body models.UpdateFlashSaleRequest true "Flash sale update fields"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/flash-sales/{id} [patch]
func UpdateFlashSale(c *gin.Context) {
	// Step 1: Parse and validate flash sale ID
	idParam := c.Param("id")
	flashSaleID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid flash sale ID"))
		return
	}

	var input models.UpdateFlashSaleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Find existing campaign
	var flashSale models.FlashSale
	if err := config.Gorm.WithContext(ctx).
		First(&flashSale, "id = ?", flashSaleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Flash sale not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Build update map (only non-nil fields)
	updates := make(map[string]interface{})

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.StartTime != nil {
		updates["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		updates["end_time"] = *input.EndTime
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	// Step 4: Validate resulting window
	newStart := flashSale.StartTime
	newEnd := flashSale.EndTime
	if input.StartTime != nil {
		newStart = *input.StartTime
	}
	if input.EndTime != nil {
		newEnd = *input.EndTime
	}
	if !newEnd.After(newStart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "end_time must be after start_time"))
		return
	}

	// Step 5: Update campaign; keep item end times in sync with the window
	if err := config.Gorm.WithContext(ctx).
		Model(&flashSale).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update flash sale"))
		return
	}

	if input.EndTime != nil {
		if err := config.Gorm.WithContext(ctx).
			Model(&models.FlashSaleItem{}).
			Where("flash_sale_id = ?", flashSaleID).
			Update("end_time", *input.EndTime).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update flash sale items"))
			return
		}
	}

	// Step 6: Reload with items and drop the storefront cache
	if err := config.Gorm.WithContext(ctx).
		Preload("Items").
		First(&flashSale, "id = ?", flashSaleID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload flash sale"))
		return
	}

	flash_sale_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flash sale updated successfully", flashSale))
}
