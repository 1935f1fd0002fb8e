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

// DeleteFlashSale godoc
// @Summary Delete a flash sale
// @Description Delete a flash sale campaign and all its items
// @Tags CMS - Flash Sales
// @Produce json
// @Param id path string true "Flash sale ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/flash-sales/{id} [delete]
func DeleteFlashSale(c *gin.Context) {
	// Step 1: Parse and validate flash sale ID
	idParam := c.Param("id")
	flashSaleID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid flash sale ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Ensure campaign exists
	var flashSale models.FlashSale
	if err := config.Gorm.WithContext(ctx).
		Select("id").
		First(&flashSale, "id = ?", flashSaleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Flash sale not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Delete items then the campaign in one transaction
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("flash_sale_id = ?", flashSaleID).
			Delete(&models.FlashSaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&flashSale).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete flash sale: "+err.Error()))
		return
	}

	flash_sale_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flash sale deleted successfully", map[string]string{
		"id": flashSaleID.String(),
	}))
}
