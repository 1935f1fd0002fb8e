package product_controller

import (
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Retrieve active products for the storefront. Dispatches to the filtered listing when any filter param is present, otherwise to the cheap unfiltered listing.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name, description, brand or tag)"
// @Param brand query []string false "Brand names (repeatable)"
// @Param category query []string false "Category names (repeatable)"
// @Param availability query string false "Availability filter (in_stock | out_of_stock)"
// @Param minPrice query number false "Minimum effective price"
// @Param maxPrice query number false "Maximum effective price"
// @Param sortBy query string false "Sort by field (newest, price, name, popular)" default(newest)
// @Param sortOrder query string false "Sort order (asc | desc)" default(desc)
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductCard,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	if hasStorefrontFilters(c) {
		getStorefrontProductsWithFilters(c)
		return
	}
	getStorefrontProductsWithoutFilters(c)
}

func hasStorefrontFilters(c *gin.Context) bool {
	if c.Query("q") != "" {
		return true
	}
	if len(c.QueryArray("brand")) > 0 {
		return true
	}
	if len(c.QueryArray("category")) > 0 {
		return true
	}
	if c.Query("tag") != "" {
		return true
	}
	if c.Query("availability") != "" {
		return true
	}
	if c.Query("minPrice") != "" || c.Query("maxPrice") != "" {
		return true
	}
	return false
}
