package product_controller

import (
	"log"
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by ID with per-option effective prices and clamped discounts resolved. Variants can be ordered by their cheapest option with sortVariants=price_asc|price_desc.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param sortVariants query string false "Variant ordering (price_asc | price_desc)"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductDetail}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND status = 'Active'", productID).
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		}
		return
	}

	variants := orderVariants(product.Variants, c.Query("sortVariants"))

	variantViews := make([]models.StorefrontVariantView, 0, len(variants))
	for _, v := range variants {
		variantViews = append(variantViews, buildVariantView(v))
	}

	detail := models.StorefrontProductDetail{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Brand:       product.Brand,
		Category:    product.Category,
		Media:       product.Media,
		MinPrice:    pricing.MinEffectivePrice(product.AllAvailabilities()),
		Variants:    variantViews,
		Views:       product.Views,
		CreatedAt:   product.CreatedAt,
	}

	go incrementProductViews(productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}

// orderVariants applies the optional price ordering. Ties keep the stored
// variant order.
func orderVariants(variants models.VariantsList, sortVariants string) []models.ProductVariant {
	switch sortVariants {
	case "price_asc", "price_desc":
		ranked := pricing.RankVariantsByPrice(variants, sortVariants == "price_asc")
		out := make([]models.ProductVariant, 0, len(ranked))
		for _, r := range ranked {
			out = append(out, r.Variant)
		}
		return out
	default:
		return variants
	}
}

func buildVariantView(v models.ProductVariant) models.StorefrontVariantView {
	options := make([]models.StorefrontOptionView, 0, len(v.Options))
	avail := make([]models.Availability, 0, len(v.Options))

	for _, opt := range v.Options {
		eff := pricing.EffectivePrice(opt.Availability)
		options = append(options, models.StorefrontOptionView{
			SKU:             opt.SKU,
			Value:           opt.Value,
			EffectivePrice:  eff,
			RegularPrice:    opt.Availability.RegularPrice,
			DiscountPercent: pricing.DisplayDiscountPercent(opt.Availability.RegularPrice, eff),
			Quantity:        opt.Availability.Quantity,
			Images:          opt.Images,
			Review:          opt.Review,
		})
		avail = append(avail, opt.Availability)
	}

	return models.StorefrontVariantView{
		Code:     v.Code,
		Name:     v.Name,
		MinPrice: pricing.MinEffectivePrice(avail),
		Options:  options,
		Specs:    v.Specs,
	}
}

// incrementProductViews bumps the view counter outside the request path,
// straight through the pgx pool to keep the hot path cheap.
func incrementProductViews(productID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, err := config.DB.Exec(ctx,
		"UPDATE products SET views = COALESCE(views, 0) + 1 WHERE id = $1",
		productID,
	); err != nil {
		log.Printf("[store.products] view counter update failed id=%s err=%v", productID, err)
	}
}
