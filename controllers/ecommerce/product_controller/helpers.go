package product_controller

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// minEffectivePriceExpr computes the minimum effective price of a product
// in SQL: sale price when positive, regular price otherwise, across every
// option of every variant. Used for price sorting and price-range filters
// so pagination stays correct across pages.
const minEffectivePriceExpr = `(
	SELECT MIN(
		CASE WHEN (opt->'availability'->>'sale_price')::numeric > 0
		     THEN (opt->'availability'->>'sale_price')::numeric
		     ELSE (opt->'availability'->>'regular_price')::numeric
		END)
	FROM jsonb_array_elements(p.variants) AS v,
	     jsonb_array_elements(v->'options') AS opt
)`

// parsePagination reads the storefront pagination params. Storefront pages
// are 1-indexed on the wire; everything past this point runs on the
// 0-indexed PageRequest.
func parsePagination(c *gin.Context) pagination.PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	return pagination.PageRequest{Index0: page - 1, Size: limit}
}

// buildStorefrontOrderClause maps sortBy/sortOrder onto a deterministic
// ORDER BY. Every branch carries explicit tiebreak columns so products with
// equal sort keys keep a stable order between requests.
func buildStorefrontOrderClause(sortBy, sortOrder string) string {
	dir := "DESC"
	if sortOrder == "asc" {
		dir = "ASC"
	}

	switch sortBy {
	case "price":
		return fmt.Sprintf("ORDER BY %s %s NULLS LAST, p.created_at DESC, p.id", minEffectivePriceExpr, dir)
	case "name":
		return fmt.Sprintf("ORDER BY p.name %s, p.id", dir)
	case "popular":
		return "ORDER BY p.views DESC, p.created_at DESC, p.id"
	default: // newest
		return fmt.Sprintf("ORDER BY p.created_at %s, p.id", dir)
	}
}

type storefrontProductRow struct {
	ID       string `gorm:"column:id"`
	Name     string `gorm:"column:name"`
	Brand    string `gorm:"column:brand"`
	Image    string `gorm:"column:image"`
	Variants []byte `gorm:"column:variants"`
}

// fetchStorefrontProductsFromDB runs the count + page queries and projects
// each row into a product card. The displayed prices are derived in Go from
// the variants payload so the storefront and CMS share one pricing rule.
func fetchStorefrontProductsFromDB(
	c *gin.Context,
	whereClause string,
	orderClause string,
	args []interface{},
	req pagination.PageRequest,
) ([]models.StorefrontProductCard, int, error) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	countSQL := "SELECT COUNT(*) FROM products p WHERE " + whereClause

	var total int64
	if err := config.Gorm.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT
			p.id::text AS id,
			p.name,
			p.brand,
			p.media->'primary'->>'url' AS image,
			p.variants
		FROM products p
		WHERE %s
		%s
		LIMIT ? OFFSET ?
	`, whereClause, orderClause)

	dataArgs := append(args, req.Size, req.Offset())

	var rows []storefrontProductRow
	if err := config.Gorm.WithContext(ctx).Raw(dataSQL, dataArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	cards := make([]models.StorefrontProductCard, 0, len(rows))
	for _, row := range rows {
		card, err := buildProductCard(row)
		if err != nil {
			return nil, 0, err
		}
		cards = append(cards, card)
	}

	return cards, int(total), nil
}

// buildProductCard derives the card pricing fields from the raw variants
// payload. The regular price shown is the one belonging to the cheapest
// option, so "min_price vs regular_price" always describes the same SKU.
func buildProductCard(row storefrontProductRow) (models.StorefrontProductCard, error) {
	var variants models.VariantsList
	if len(row.Variants) > 0 {
		if err := json.Unmarshal(row.Variants, &variants); err != nil {
			return models.StorefrontProductCard{}, fmt.Errorf("parse variants for product %s: %w", row.ID, err)
		}
	}

	var (
		minPrice     float64
		regularPrice float64
		inStock      bool
		first        = true
	)
	for _, v := range variants {
		for _, opt := range v.Options {
			eff := pricing.EffectivePrice(opt.Availability)
			if first || eff < minPrice {
				minPrice = eff
				regularPrice = opt.Availability.RegularPrice
				first = false
			}
			if opt.Availability.ProductStatus && opt.Availability.Quantity > 0 {
				inStock = true
			}
		}
	}

	id, err := uuid.Parse(row.ID)
	if err != nil {
		return models.StorefrontProductCard{}, fmt.Errorf("parse product id %q: %w", row.ID, err)
	}

	return models.StorefrontProductCard{
		ID:              id,
		Name:            row.Name,
		Brand:           row.Brand,
		Image:           row.Image,
		MinPrice:        minPrice,
		RegularPrice:    regularPrice,
		DiscountPercent: pricing.DisplayDiscountPercent(regularPrice, minPrice),
		InStock:         inStock,
	}, nil
}
