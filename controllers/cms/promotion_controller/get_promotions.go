package promotion_controller

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/gin-gonic/gin"
)

// GetPromotions godoc
// @Summary Get paginated promotions
// @Description Retrieve all promotions with pagination. "live" on each row honours both the admin toggle and the validity window. Page numbers are 0-indexed.
// @Tags CMS - Promotions
// @Produce json
// @Param page query int false "Page number (0-indexed)" default(0)
// @Param limit query int false "Items per page" default(10)
// @Param active query bool false "Filter by the is_active flag"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/promotions [get]
func GetPromotions(c *gin.Context) {
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

	// Step 2: Build query with optional active filter
	query := config.Gorm.WithContext(ctx).Model(&models.Promotion{})
	if activeStr := c.Query("active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			query = query.Where("is_active = ?", active)
		}
	}

	// Step 3: Count total promotions
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count promotions"))
		return
	}

	// Step 4: Fetch promotions
	promotions := make([]models.Promotion, 0)
	if err := query.
		Order("valid_from DESC").
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&promotions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch promotions"))
		return
	}

	// Step 5: Annotate each row. The admin list uses IsLive, which honours
	// the toggle, unlike the storefront carousel.
	now := time.Now()
	rows := make([]gin.H, 0, len(promotions))
	for i := range promotions {
		p := &promotions[i]
		rows = append(rows, gin.H{
			"promotion": p,
			"live":      p.IsLive(now),
		})
	}

	// Step 6: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		CurrentPage:   req.Index0,
		PageSize:      limit,
		TotalElements: int(total),
		TotalPages:    totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Promotions fetched successfully", rows, meta))
}
