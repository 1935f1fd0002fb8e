// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS — customer-facing projections with the
// derived pricing fields (min price, discount) resolved.
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import (
	"time"

	"github.com/google/uuid"
)

// StorefrontProductCard is the list/search projection: one card per
// product with the representative minimum effective price.
type StorefrontProductCard struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Image           string    `json:"image"`
	MinPrice        float64   `json:"min_price"`
	RegularPrice    float64   `json:"regular_price"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	InStock         bool      `json:"in_stock"`
}

// StorefrontOptionView is one purchasable option with its display price
// and clamped discount resolved.
type StorefrontOptionView struct {
	SKU             string         `json:"sku"`
	Value           string         `json:"value"`
	EffectivePrice  float64        `json:"effective_price"`
	RegularPrice    float64        `json:"regular_price"`
	DiscountPercent *int           `json:"discount_percent,omitempty"`
	Quantity        int            `json:"quantity"`
	Images          []Image        `json:"images,omitempty"`
	Review          *ReviewSummary `json:"review,omitempty"`
}

// StorefrontVariantView groups option views under their variant axis.
type StorefrontVariantView struct {
	Code     string                 `json:"code"`
	Name     string                 `json:"name"`
	MinPrice float64                `json:"min_price"`
	Options  []StorefrontOptionView `json:"options"`
	Specs    map[string]string      `json:"specs,omitempty"`
}

// StorefrontProductDetail is the product page payload.
type StorefrontProductDetail struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Brand       string                  `json:"brand"`
	Category    string                  `json:"category"`
	Media       ProductMedia            `json:"media"`
	MinPrice    float64                 `json:"min_price"`
	Variants    []StorefrontVariantView `json:"variants"`
	Views       int                     `json:"views"`
	CreatedAt   time.Time               `json:"created_at"`
}

// PromotionView is the storefront carousel projection of a promotion.
type PromotionView struct {
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent *float64  `json:"discount_percent,omitempty"`
	DiscountAmount  *float64  `json:"discount_amount,omitempty"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
	SKUs            []string  `json:"skus"`
}
