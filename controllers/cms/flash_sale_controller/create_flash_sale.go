package flash_sale_controller

import (
	"net/http"
	"time"

	flash_sale_cache "github.com/HTeam-Ecommerce/hteam-commerce-backend/cache"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateFlashSale godoc
// @Summary Create a flash sale campaign
// @Description Create a flash sale with quantity-capped price overrides on specific SKUs. Each item snapshots its product option at creation time.
// @Tags CMS - Flash Sales
// @Accept json
// @Produce json
// @Param flash_sale body models.FlashSaleRequest true "Flash sale details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/flash-sales [post]
func CreateFlashSale(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.FlashSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Validate time window
	if !req.EndTime.After(req.StartTime) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "end_time must be after start_time"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 3: Resolve each SKU against the catalog and snapshot its option
	items := make([]models.FlashSaleItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, err := uuid.Parse(itemReq.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product_id for SKU "+itemReq.SKU))
			return
		}

		var product models.Product
		if err := config.Gorm.WithContext(ctx).
			First(&product, "id = ?", productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product not found for SKU "+itemReq.SKU))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}

		option := product.FindOption(itemReq.SKU)
		if option == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "SKU "+itemReq.SKU+" does not exist on product "+product.Name))
			return
		}

		// Flash price must undercut the current effective price
		effective := pricing.EffectivePrice(option.Availability)
		if effective > 0 && itemReq.FlashPrice >= effective {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Flash price for SKU "+itemReq.SKU+" must be below the current price"))
			return
		}

		items = append(items, models.FlashSaleItem{
			SKU:           itemReq.SKU,
			ProductID:     productID,
			FlashPrice:    itemReq.FlashPrice,
			LimitQuantity: itemReq.LimitQuantity,
			SoldQuantity:  0,
			Option:        models.OptionSnapshot{ProductOption: *option},
			EndTime:       req.EndTime,
		})
	}

	// Step 4: Derive initial status from the window
	now := time.Now()
	status := "Scheduled"
	switch {
	case now.After(req.EndTime):
		status = "Ended"
	case !now.Before(req.StartTime):
		status = "Active"
	}

	flashSale := models.FlashSale{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
		Items:     items,
	}

	// Step 5: Save campaign and items in one transaction
	if err := config.Gorm.WithContext(ctx).Create(&flashSale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create flash sale: "+err.Error()))
		return
	}

	// Step 6: Drop the storefront cache so the new campaign shows up
	flash_sale_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Flash sale created successfully", flashSale))
}
