package product_controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

func getStorefrontProductsWithFilters(c *gin.Context) {
	req := parsePagination(c)

	searchQuery := strings.TrimSpace(c.Query("q"))
	brands := c.QueryArray("brand")
	categories := c.QueryArray("category")
	tag := strings.TrimSpace(c.Query("tag"))
	availability := c.Query("availability")
	minPriceStr := c.Query("minPrice")
	maxPriceStr := c.Query("maxPrice")
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	conditions := []string{"p.status = 'Active'"}
	args := []interface{}{}

	// Search query (name, description, brand or tag)
	if searchQuery != "" {
		cond := `(
			p.name ILIKE ? OR p.description ILIKE ? OR p.brand ILIKE ?
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(p.tags) AS t
				WHERE t ILIKE ?
			)
		)`
		like := "%" + searchQuery + "%"
		conditions = append(conditions, cond)
		args = append(args, like, like, like, like)
	}

	// Brand filter (case-insensitive, multiple)
	if len(brands) > 0 {
		placeholders := make([]string, len(brands))
		for i, b := range brands {
			placeholders[i] = "LOWER(?)"
			args = append(args, strings.TrimSpace(b))
		}
		conditions = append(conditions, fmt.Sprintf("LOWER(p.brand) IN (%s)", strings.Join(placeholders, ",")))
	}

	// Category filter (case-insensitive, multiple)
	if len(categories) > 0 {
		placeholders := make([]string, len(categories))
		for i, cat := range categories {
			placeholders[i] = "LOWER(?)"
			args = append(args, strings.TrimSpace(cat))
		}
		conditions = append(conditions, fmt.Sprintf("LOWER(p.category) IN (%s)", strings.Join(placeholders, ",")))
	}

	// Tag filter (exact tag match)
	if tag != "" {
		conditions = append(conditions, "p.tags @> to_jsonb(ARRAY[?::text])")
		args = append(args, tag)
	}

	// Availability filter: an option counts as purchasable only when it is
	// enabled and has stock.
	switch availability {
	case "in_stock", "inStock":
		conditions = append(conditions, `EXISTS (
			SELECT 1
			FROM jsonb_array_elements(p.variants) AS v,
			     jsonb_array_elements(v->'options') AS opt
			WHERE (opt->'availability'->>'quantity')::int > 0
			  AND (opt->'availability'->>'product_status')::boolean
		)`)
	case "out_of_stock", "outOfStock":
		conditions = append(conditions, `NOT EXISTS (
			SELECT 1
			FROM jsonb_array_elements(p.variants) AS v,
			     jsonb_array_elements(v->'options') AS opt
			WHERE (opt->'availability'->>'quantity')::int > 0
			  AND (opt->'availability'->>'product_status')::boolean
		)`)
	}

	// Price range filter over the minimum effective price
	if minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			conditions = append(conditions, minEffectivePriceExpr+" >= ?")
			args = append(args, minPrice)
		}
	}
	if maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			conditions = append(conditions, minEffectivePriceExpr+" <= ?")
			args = append(args, maxPrice)
		}
	}

	whereClause := strings.Join(conditions, " AND ")
	orderClause := buildStorefrontOrderClause(sortBy, sortOrder)

	products, totalCount, err := fetchStorefrontProductsFromDB(c, whereClause, orderClause, args, req)
	if err != nil {
		log.Printf("[store.products] ERROR filtered fetch failed err=%v", err)
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
