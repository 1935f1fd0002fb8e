package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve all products with pagination and optional filtering. Page numbers are 0-indexed.
// @Tags CMS - Products
// @Produce json
// @Param page query int false "Page number (0-indexed)" default(0)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(Active, Draft)
// @Param brand query string false "Filter by brand"
// @Param category query string false "Filter by category"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
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

	// Step 2: Build query with optional filters
	query := config.Gorm.WithContext(c.Request.Context()).Model(&models.Product{})

	if status := c.Query("status"); status == "Active" || status == "Draft" {
		query = query.Where("status = ?", status)
	}
	if brand := c.Query("brand"); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	// Step 3: Count total products
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	// Step 4: Fetch products
	products := make([]models.Product, 0)
	if err := query.
		Order("created_at DESC").
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 5: Transform products into structured response format
	productResponses := make([]gin.H, 0, len(products))
	for _, product := range products {
		minPrice := pricing.MinEffectivePrice(product.AllAvailabilities())

		productResponses = append(productResponses, gin.H{
			"basic_info": models.ProductBase{
				ID:          product.ID,
				Name:        product.Name,
				Description: product.Description,
				Brand:       product.Brand,
				Category:    product.Category,
				Status:      product.Status,
				Tags:        []string(product.Tags),
				CreatedAt:   product.CreatedAt,
				UpdatedAt:   product.UpdatedAt,
			},
			"media":     product.Media,
			"variants":  []models.ProductVariant(product.Variants),
			"specs":     product.Specs,
			"min_price": minPrice,
			"views":     product.Views,
		})
	}

	// Step 6: Prepare pagination meta (CurrentPage stays 0-indexed)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		CurrentPage:   req.Index0,
		PageSize:      limit,
		TotalElements: int(total),
		TotalPages:    totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", productResponses, meta))
}
