package models_test

import (
	"testing"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

func promo(from, to time.Time, active bool) models.Promotion {
	return models.Promotion{Code: "TEST", ValidFrom: from, ValidTo: to, IsActive: active}
}

func TestPromotionInWindow(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	p := promo(from, to, false)

	// window check ignores the stored flag entirely
	if !p.InWindow(from) {
		t.Fatal("validFrom boundary must be inside the window")
	}
	if !p.InWindow(to) {
		t.Fatal("validTo boundary must be inside the window")
	}
	if p.InWindow(from.Add(-time.Second)) {
		t.Fatal("before validFrom must be outside the window")
	}
	if p.InWindow(to.Add(time.Second)) {
		t.Fatal("after validTo must be outside the window")
	}
}

func TestPromotionIsLive(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	// the two predicates diverge when the flag is off inside the window
	p := promo(from, to, false)
	if !p.InWindow(now) {
		t.Fatal("want in window")
	}
	if p.IsLive(now) {
		t.Fatal("IsLive must honour the disabled flag")
	}

	p.IsActive = true
	if !p.IsLive(now) {
		t.Fatal("want live with flag on inside window")
	}
	if p.IsLive(to.Add(time.Hour)) {
		t.Fatal("IsLive must honour the window")
	}
}

func TestPromotionAppliesTo(t *testing.T) {
	p := models.Promotion{SKUs: models.TagsList{"SKU-1", "SKU-2"}}
	if !p.AppliesTo("SKU-1") || p.AppliesTo("SKU-3") {
		t.Fatal("SKU membership check wrong")
	}

	// empty SKU set means storewide
	storewide := models.Promotion{}
	if !storewide.AppliesTo("ANY") {
		t.Fatal("empty SKU set must apply storewide")
	}
}

func TestPromotionDiscountOn(t *testing.T) {
	pct := 10.0
	p := models.Promotion{DiscountPercent: &pct}
	if got := p.DiscountOn(200000); got != 20000 {
		t.Fatalf("want 20000, got %v", got)
	}

	amount := 50000.0
	fixed := models.Promotion{DiscountAmount: &amount}
	if got := fixed.DiscountOn(200000); got != 50000 {
		t.Fatalf("want 50000, got %v", got)
	}

	// fixed discount never exceeds the price
	if got := fixed.DiscountOn(30000); got != 30000 {
		t.Fatalf("want discount capped at price, got %v", got)
	}

	// percentage takes precedence when both are set
	both := models.Promotion{DiscountPercent: &pct, DiscountAmount: &amount}
	if got := both.DiscountOn(200000); got != 20000 {
		t.Fatalf("want percent to win, got %v", got)
	}

	none := models.Promotion{}
	if got := none.DiscountOn(200000); got != 0 {
		t.Fatalf("want 0 without discount fields, got %v", got)
	}
}
