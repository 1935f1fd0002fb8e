package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search products
// @Description Search products by name, description, brand, or tags (case-insensitive). Returns paginated results.
// @Tags CMS - Products
// @Produce json
// @Param query query string true "Search keyword"
// @Param page query int false "Page number (0-indexed)" default(0)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/products/search [get]
func SearchProducts(c *gin.Context) {
	// Step 1: Parse query parameter
	queryParam := c.Query("query")
	if queryParam == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'query' is required"))
		return
	}

	// Step 2: Parse and validate pagination (0-indexed)
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

	// Step 3: Build search query
	searchPattern := "%" + queryParam + "%"
	searchCondition := `
		name ILIKE ? OR
		description ILIKE ? OR
		brand ILIKE ? OR
		EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(tags) AS tag
			WHERE tag ILIKE ?
		)
	`

	// Count total matches (using Raw SQL for JSONB array search)
	var total int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where(searchCondition, searchPattern, searchPattern, searchPattern, searchPattern).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	// Step 4: Early return if no results
	if total == 0 {
		meta := &models.Pagination{
			CurrentPage:   req.Index0,
			PageSize:      limit,
			TotalElements: 0,
			TotalPages:    0,
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "No results found", make([]models.ProductResponse, 0), meta))
		return
	}

	// Step 5: Fetch matching products
	products := make([]models.Product, 0)
	if err := config.Gorm.WithContext(ctx).
		Where(searchCondition, searchPattern, searchPattern, searchPattern, searchPattern).
		Order("created_at DESC").
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 6: Transform to ProductResponse format
	responses := make([]models.ProductResponse, 0, len(products))
	for _, p := range products {
		specs := make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			if s, ok := v.(string); ok {
				specs[k] = s
			}
		}
		responses = append(responses, models.ProductResponse{
			BasicInfo: models.ProductBase{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Brand:       p.Brand,
				Category:    p.Category,
				Status:      p.Status,
				Tags:        []string(p.Tags),
				CreatedAt:   p.CreatedAt,
				UpdatedAt:   p.UpdatedAt,
			},
			Media:    p.Media,
			Variants: []models.ProductVariant(p.Variants),
			Specs:    specs,
		})
	}

	// Step 7: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		CurrentPage:   req.Index0,
		PageSize:      limit,
		TotalElements: int(total),
		TotalPages:    totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results", responses, meta))
}
