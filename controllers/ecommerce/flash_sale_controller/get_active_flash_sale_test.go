package flash_sale_controller

import (
	"testing"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

func TestBuildFlashSaleResponseDerivedFields(t *testing.T) {
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sale := &models.FlashSale{
		Name:      "Test Sale",
		StartTime: end.Add(-24 * time.Hour),
		EndTime:   end,
		Status:    "Active",
		Items: []models.FlashSaleItem{
			{
				SKU:           "SKU-OK",
				FlashPrice:    75,
				LimitQuantity: 10,
				SoldQuantity:  4,
				EndTime:       end,
				Option:        models.OptionSnapshot{ProductOption: models.ProductOption{SKU: "SKU-OK", Availability: models.Availability{RegularPrice: 100}}},
			},
			{
				// oversold: raw remaining is negative, storefront shows 0
				SKU:           "SKU-OVER",
				FlashPrice:    50,
				LimitQuantity: 5,
				SoldQuantity:  8,
				EndTime:       end,
				Option:        models.OptionSnapshot{ProductOption: models.ProductOption{SKU: "SKU-OVER", Availability: models.Availability{RegularPrice: 100}}},
			},
		},
	}

	resp := buildFlashSaleResponse(sale)
	if len(resp.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(resp.Items))
	}

	ok := resp.Items[0]
	if ok.Remaining != 6 {
		t.Fatalf("remaining = %d, want 6", ok.Remaining)
	}
	if ok.DiscountPercent == nil || *ok.DiscountPercent != 25 {
		t.Fatalf("discount = %v, want 25", ok.DiscountPercent)
	}
	if ok.SoldPercent != 40 {
		t.Fatalf("sold percent = %d, want 40", ok.SoldPercent)
	}

	over := resp.Items[1]
	if over.Remaining != 0 {
		t.Fatalf("oversold remaining = %d, want floored to 0", over.Remaining)
	}
	if over.SoldPercent != 100 {
		t.Fatalf("oversold sold percent = %d, want capped at 100", over.SoldPercent)
	}
}
