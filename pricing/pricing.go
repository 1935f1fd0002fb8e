// Package pricing holds the derived-price rules shared by the storefront
// and CMS handlers: effective price resolution, discount percentages and
// price-based sorting of variant options.
package pricing

import (
	"math"
	"sort"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

// EffectivePrice returns the price actually charged for an option:
// sale price if set and positive, else regular price. A result of 0 means
// the option is not purchasable.
func EffectivePrice(a models.Availability) float64 {
	if a.SalePrice > 0 {
		return a.SalePrice
	}
	if a.RegularPrice > 0 {
		return a.RegularPrice
	}
	return 0
}

// MinEffectivePrice returns the minimum effective price across a set of
// option availabilities. An empty input yields 0.
func MinEffectivePrice(options []models.Availability) float64 {
	if len(options) == 0 {
		return 0
	}

	min := EffectivePrice(options[0])
	for _, a := range options[1:] {
		if p := EffectivePrice(a); p < min {
			min = p
		}
	}
	return min
}

// DiscountPercent computes round((regular-effective)/regular*100).
// Returns nil when regularPrice <= 0 (no discount displayable).
//
// The raw value is NOT clamped: anomalous data (effective > regular) yields
// a negative percentage here. Use DisplayDiscountPercent at the rendering
// boundary.
func DiscountPercent(regularPrice, effectivePrice float64) *int {
	if regularPrice <= 0 {
		return nil
	}

	pct := int(math.Round((regularPrice - effectivePrice) / regularPrice * 100))
	return &pct
}

// DisplayDiscountPercent is DiscountPercent clamped to [0, 100] for
// customer-facing surfaces.
func DisplayDiscountPercent(regularPrice, effectivePrice float64) *int {
	pct := DiscountPercent(regularPrice, effectivePrice)
	if pct == nil {
		return nil
	}
	if *pct < 0 {
		*pct = 0
	}
	if *pct > 100 {
		*pct = 100
	}
	return pct
}

// VariantMinPrice pairs a variant with its precomputed minimum effective
// price so a page can be sorted without recomputing per comparison.
type VariantMinPrice struct {
	Variant  models.ProductVariant
	MinPrice float64
}

// RankVariantsByPrice computes the min effective price for each variant and
// returns them sorted by it. The sort is stable: variants with equal min
// prices keep their fetched order.
func RankVariantsByPrice(variants []models.ProductVariant, ascending bool) []VariantMinPrice {
	ranked := make([]VariantMinPrice, 0, len(variants))
	for _, v := range variants {
		avail := make([]models.Availability, 0, len(v.Options))
		for _, opt := range v.Options {
			avail = append(avail, opt.Availability)
		}
		ranked = append(ranked, VariantMinPrice{Variant: v, MinPrice: MinEffectivePrice(avail)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return ranked[i].MinPrice < ranked[j].MinPrice
		}
		return ranked[i].MinPrice > ranked[j].MinPrice
	})

	return ranked
}
