package product_controller

import (
	"log"
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

func getStorefrontProductsWithoutFilters(c *gin.Context) {
	req := parsePagination(c)
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	whereClause := "p.status = 'Active'"
	orderClause := buildStorefrontOrderClause(sortBy, sortOrder)

	products, totalCount, err := fetchStorefrontProductsFromDB(c, whereClause, orderClause, nil, req)
	if err != nil {
		log.Printf("[store.products] ERROR unfiltered fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := (totalCount + req.Size - 1) / req.Size

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		products,
		&models.Pagination{
			CurrentPage:   req.Index0,
			PageSize:      req.Size,
			TotalElements: totalCount,
			TotalPages:    totalPages,
		},
	))
}
