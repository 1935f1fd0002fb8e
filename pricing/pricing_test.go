package pricing_test

import (
	"testing"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
)

func avail(regular, sale float64) models.Availability {
	return models.Availability{RegularPrice: regular, SalePrice: sale, Quantity: 10}
}

func TestEffectivePrice(t *testing.T) {
	cases := []struct {
		name string
		a    models.Availability
		want float64
	}{
		{"sale price wins when positive", avail(100000, 80000), 80000},
		{"zero sale falls back to regular", avail(100000, 0), 100000},
		{"both zero means unavailable", avail(0, 0), 0},
		{"sale above regular still wins", avail(100000, 120000), 120000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pricing.EffectivePrice(tc.a); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMinEffectivePrice(t *testing.T) {
	// single option with positive sale price -> sale price
	if got := pricing.MinEffectivePrice([]models.Availability{avail(100000, 80000)}); got != 80000 {
		t.Fatalf("want 80000, got %v", got)
	}

	// single option without sale price -> regular price
	if got := pricing.MinEffectivePrice([]models.Availability{avail(100000, 0)}); got != 100000 {
		t.Fatalf("want 100000, got %v", got)
	}

	// minimum across mixed options
	opts := []models.Availability{
		avail(300000, 0),
		avail(250000, 150000),
		avail(200000, 0),
	}
	if got := pricing.MinEffectivePrice(opts); got != 150000 {
		t.Fatalf("want 150000, got %v", got)
	}

	// empty input -> 0
	if got := pricing.MinEffectivePrice(nil); got != 0 {
		t.Fatalf("want 0 for empty input, got %v", got)
	}
}

func TestDiscountPercent(t *testing.T) {
	if got := pricing.DiscountPercent(100000, 80000); got == nil || *got != 20 {
		t.Fatalf("want 20, got %v", got)
	}

	// no regular price -> no discount displayable
	if got := pricing.DiscountPercent(0, 50000); got != nil {
		t.Fatalf("want nil for zero regular price, got %d", *got)
	}
	if got := pricing.DiscountPercent(-1, 50000); got != nil {
		t.Fatalf("want nil for negative regular price, got %d", *got)
	}

	// rounding
	if got := pricing.DiscountPercent(30000, 20000); got == nil || *got != 33 {
		t.Fatalf("want 33, got %v", got)
	}

	// data anomaly: effective above regular yields a negative raw value
	if got := pricing.DiscountPercent(100000, 120000); got == nil || *got != -20 {
		t.Fatalf("want -20 unclamped, got %v", got)
	}
}

func TestDisplayDiscountPercent(t *testing.T) {
	// anomaly is clamped at the display boundary
	if got := pricing.DisplayDiscountPercent(100000, 120000); got == nil || *got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
	if got := pricing.DisplayDiscountPercent(100000, 0); got == nil || *got != 100 {
		t.Fatalf("want 100, got %v", got)
	}
	if got := pricing.DisplayDiscountPercent(0, 50000); got != nil {
		t.Fatalf("want nil, got %d", *got)
	}
}

func variantWithPrices(code string, prices ...float64) models.ProductVariant {
	v := models.ProductVariant{Code: code, Name: code}
	for _, p := range prices {
		v.Options = append(v.Options, models.ProductOption{
			SKU:          code,
			Availability: avail(p, 0),
		})
	}
	return v
}

func TestRankVariantsByPrice(t *testing.T) {
	variants := []models.ProductVariant{
		variantWithPrices("A", 300),
		variantWithPrices("B", 100),
		variantWithPrices("C", 200),
	}

	asc := pricing.RankVariantsByPrice(variants, true)
	if asc[0].MinPrice != 100 || asc[1].MinPrice != 200 || asc[2].MinPrice != 300 {
		t.Fatalf("ascending order wrong: %+v", asc)
	}

	desc := pricing.RankVariantsByPrice(variants, false)
	if desc[0].MinPrice != 300 || desc[1].MinPrice != 200 || desc[2].MinPrice != 100 {
		t.Fatalf("descending order wrong: %+v", desc)
	}
}

func TestRankVariantsByPriceStableTies(t *testing.T) {
	variants := []models.ProductVariant{
		variantWithPrices("first", 100),
		variantWithPrices("second", 100),
		variantWithPrices("third", 100),
	}

	ranked := pricing.RankVariantsByPrice(variants, true)
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Variant.Code != want {
			t.Fatalf("tie order not preserved at %d: want %s, got %s", i, want, ranked[i].Variant.Code)
		}
	}
}

func TestRankVariantsByPriceUsesMinAcrossOptions(t *testing.T) {
	// the cheapest option represents the variant, not the first one
	variants := []models.ProductVariant{
		variantWithPrices("multi", 500, 150, 300),
		variantWithPrices("single", 200),
	}

	ranked := pricing.RankVariantsByPrice(variants, true)
	if ranked[0].Variant.Code != "multi" || ranked[0].MinPrice != 150 {
		t.Fatalf("want multi(150) first, got %+v", ranked[0])
	}
}
