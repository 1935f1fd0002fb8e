package flash_sale_cache

import (
	"testing"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

func TestCacheRoundTrip(t *testing.T) {
	Invalidate()

	if _, ok := Get(); ok {
		t.Fatal("empty cache must miss")
	}

	sale := &models.FlashSaleResponse{Name: "Test Sale"}
	Set(sale)

	got, ok := Get()
	if !ok || got == nil || got.Name != "Test Sale" {
		t.Fatalf("got (%v, %v), want cached sale", got, ok)
	}

	Invalidate()
	if _, ok := Get(); ok {
		t.Fatal("invalidated cache must miss")
	}
}

func TestCacheStoresNilForNoActiveSale(t *testing.T) {
	Invalidate()

	// a nil payload is a valid cached answer ("no sale running")
	Set(nil)
	got, ok := Get()
	if !ok {
		t.Fatal("cached nil must still hit")
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}

	Invalidate()
}
