package flash_sale_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/gin-gonic/gin"
)

// GetFlashSales godoc
// @Summary Get paginated flash sales
// @Description Retrieve all flash sale campaigns with pagination and optional status filtering. Page numbers are 0-indexed.
// @Tags CMS - Flash Sales
// @Produce json
// @Param page query int false "Page number (0-indexed)" default(0)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(Scheduled, Active, Ended)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/flash-sales [get]
func GetFlashSales(c *gin.Context) {
	// Step 1: Parse and validate pagination params (0-indexed)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 0 {
		page = 0
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	req := pagination.PageRequest{Index0: page, Size: limit}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Build query with optional status filter
	query := config.Gorm.WithContext(ctx).Model(&models.FlashSale{})
	if status := c.Query("status"); status == "Scheduled" || status == "Active" || status == "Ended" {
		query = query.Where("status = ?", status)
	}

	// Step 3: Count total campaigns
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count flash sales"))
		return
	}

	// Step 4: Fetch campaigns with their items
	flashSales := make([]models.FlashSale, 0)
	if err := query.
		Order("start_time DESC").
		Limit(req.Size).
		Offset(req.Offset()).
		Preload("Items").
		Find(&flashSales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch flash sales"))
		return
	}

	// Step 5: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		CurrentPage:   req.Index0,
		PageSize:      limit,
		TotalElements: int(total),
		TotalPages:    totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Flash sales fetched successfully", flashSales, meta))
}
