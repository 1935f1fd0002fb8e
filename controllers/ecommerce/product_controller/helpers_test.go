package product_controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

func testContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/products?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query      string
		wantIndex0 int
		wantSize   int
	}{
		{"", 0, 12},
		{"page=1", 0, 12},
		{"page=3&limit=20", 2, 20},
		{"page=0", 0, 12},       // below-range page snaps to first
		{"page=-4&limit=-1", 0, 12},
		{"page=abc&limit=xyz", 0, 12},
		{"limit=5000", 0, 100},  // cap
	}

	for _, tc := range cases {
		req := parsePagination(testContext(tc.query))
		if req.Index0 != tc.wantIndex0 || req.Size != tc.wantSize {
			t.Errorf("query %q: got (%d, %d), want (%d, %d)",
				tc.query, req.Index0, req.Size, tc.wantIndex0, tc.wantSize)
		}
	}
}

func TestBuildStorefrontOrderClause(t *testing.T) {
	// price sort must order on the derived min price, not a raw column
	clause := buildStorefrontOrderClause("price", "asc")
	if !strings.Contains(clause, "jsonb_array_elements") {
		t.Fatalf("price sort must derive min price from variants, got %q", clause)
	}
	if !strings.Contains(clause, "ASC") {
		t.Fatalf("want ascending direction, got %q", clause)
	}
	// every clause carries a tiebreak so equal keys keep a stable order
	for _, sortBy := range []string{"price", "name", "popular", "newest"} {
		clause := buildStorefrontOrderClause(sortBy, "desc")
		if !strings.Contains(clause, "p.id") && !strings.Contains(clause, "p.created_at DESC, p.id") {
			t.Errorf("sortBy %q: clause %q has no tiebreak", sortBy, clause)
		}
	}
}

func cardRow(t *testing.T, variants models.VariantsList) storefrontProductRow {
	t.Helper()
	raw, err := json.Marshal(variants)
	if err != nil {
		t.Fatal(err)
	}
	return storefrontProductRow{
		ID:       "0190b540-4f2a-7000-8000-000000000001",
		Name:     "iPhone 15 Pro Max",
		Brand:    "Apple",
		Variants: raw,
	}
}

func TestBuildProductCardPicksCheapestOption(t *testing.T) {
	variants := models.VariantsList{{
		Code: "IP15PM-256",
		Name: "256GB",
		Options: []models.ProductOption{
			{SKU: "A", Value: "Black", Availability: models.Availability{Quantity: 3, RegularPrice: 30_000_000, SalePrice: 0, ProductStatus: true}},
			{SKU: "B", Value: "Blue", Availability: models.Availability{Quantity: 0, RegularPrice: 28_000_000, SalePrice: 21_000_000, ProductStatus: true}},
		},
	}}

	card, err := buildProductCard(cardRow(t, variants))
	if err != nil {
		t.Fatal(err)
	}

	if card.MinPrice != 21_000_000 {
		t.Fatalf("min price = %v, want sale price of cheapest option", card.MinPrice)
	}
	// regular price must belong to the SAME option as the min price
	if card.RegularPrice != 28_000_000 {
		t.Fatalf("regular price = %v, want the cheapest option's regular price", card.RegularPrice)
	}
	if card.DiscountPercent == nil || *card.DiscountPercent != 25 {
		t.Fatalf("discount = %v, want 25", card.DiscountPercent)
	}
	// option A has stock, so the product is in stock even though B is not
	if !card.InStock {
		t.Fatal("want in stock")
	}
}

func TestBuildProductCardClampsAnomalousDiscount(t *testing.T) {
	// effective above regular: raw discount would be negative
	variants := models.VariantsList{{
		Code: "X",
		Name: "X",
		Options: []models.ProductOption{
			{SKU: "A", Value: "A", Availability: models.Availability{Quantity: 1, RegularPrice: 100, SalePrice: 150, ProductStatus: true}},
		},
	}}

	card, err := buildProductCard(cardRow(t, variants))
	if err != nil {
		t.Fatal(err)
	}
	if card.DiscountPercent == nil || *card.DiscountPercent != 0 {
		t.Fatalf("discount = %v, want clamped to 0", card.DiscountPercent)
	}
}

func TestBuildProductCardOutOfStock(t *testing.T) {
	variants := models.VariantsList{{
		Code: "X",
		Name: "X",
		Options: []models.ProductOption{
			// stock present but option disabled
			{SKU: "A", Value: "A", Availability: models.Availability{Quantity: 5, RegularPrice: 100, ProductStatus: false}},
			{SKU: "B", Value: "B", Availability: models.Availability{Quantity: 0, RegularPrice: 90, ProductStatus: true}},
		},
	}}

	card, err := buildProductCard(cardRow(t, variants))
	if err != nil {
		t.Fatal(err)
	}
	if card.InStock {
		t.Fatal("disabled or empty options must not count as stock")
	}
}
