package models_test

import (
	"testing"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

func TestFlashSaleItemRemaining(t *testing.T) {
	item := models.FlashSaleItem{LimitQuantity: 10, SoldQuantity: 4}
	if item.Remaining() != 6 || item.DisplayRemaining() != 6 {
		t.Fatalf("want 6 remaining, got %d/%d", item.Remaining(), item.DisplayRemaining())
	}

	// oversold: raw value stays negative, display floors at 0
	oversold := models.FlashSaleItem{LimitQuantity: 10, SoldQuantity: 12}
	if oversold.Remaining() != -2 {
		t.Fatalf("want raw -2, got %d", oversold.Remaining())
	}
	if oversold.DisplayRemaining() != 0 {
		t.Fatalf("want display floor 0, got %d", oversold.DisplayRemaining())
	}
}

func TestFlashSaleItemSoldPercent(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		sold  int
		want  int
	}{
		{"half sold", 10, 5, 50},
		{"oversold caps at 100", 10, 12, 100},
		{"zero limit treated as sold out", 0, 0, 100},
		{"nothing sold", 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := models.FlashSaleItem{LimitQuantity: tc.limit, SoldQuantity: tc.sold}
			if got := item.SoldPercent(); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestFlashSaleInWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	sale := models.FlashSale{StartTime: start, EndTime: end}

	if !sale.InWindow(start) || !sale.InWindow(end) {
		t.Fatal("window boundaries must be inclusive")
	}
	if sale.InWindow(start.Add(-time.Minute)) || sale.InWindow(end.Add(time.Minute)) {
		t.Fatal("outside the window must be false")
	}
}
