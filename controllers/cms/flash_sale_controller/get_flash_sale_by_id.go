package flash_sale_controller

import (
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFlashSaleByID godoc
// @Summary Get a flash sale by ID
// @Description Retrieve a single flash sale campaign with all its items and raw sold counters
// @Tags CMS - Flash Sales
// @Produce json
// @Param id path string true "Flash sale ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/flash-sales/{id} [get]
func GetFlashSaleByID(c *gin.Context) {
	// Step 1: Parse and validate flash sale ID
	idParam := c.Param("id")
	flashSaleID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid flash sale ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Fetch campaign with items
	var flashSale models.FlashSale
	if err := config.Gorm.WithContext(ctx).
		Preload("Items").
		First(&flashSale, "id = ?", flashSaleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Flash sale not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Attach raw remaining counters per item. Oversold items show a
	// negative number here on purpose; the storefront floors at 0.
	itemViews := make([]gin.H, 0, len(flashSale.Items))
	for i := range flashSale.Items {
		item := &flashSale.Items[i]
		itemViews = append(itemViews, gin.H{
			"item":         item,
			"remaining":    item.Remaining(),
			"sold_percent": item.SoldPercent(),
		})
	}

	response := gin.H{
		"id":         flashSale.ID,
		"name":       flashSale.Name,
		"start_time": flashSale.StartTime,
		"end_time":   flashSale.EndTime,
		"status":     flashSale.Status,
		"items":      itemViews,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flash sale fetched successfully", response))
}
