package order_controller

import (
	"testing"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

func TestInvoiceTotals(t *testing.T) {
	order := models.Order{Subtotal: 500000, ShippingCost: 30000, Discount: 50000}

	rows := invoiceTotals(&order)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 with a discount", len(rows))
	}
	if rows[2][0] != "Discount" || rows[2][1] != "-50000 VND" {
		t.Errorf("discount row = %v, want negated VND amount", rows[2])
	}

	order.Discount = 0
	rows = invoiceTotals(&order)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 without a discount", len(rows))
	}
	if rows[0][1] != "500000 VND" || rows[1][1] != "30000 VND" {
		t.Errorf("rows = %v, want whole-dong amounts", rows)
	}
}

func TestInvoiceItemLabel(t *testing.T) {
	item := models.OrderItem{ProductName: "Galaxy S25", OptionValue: "256GB"}
	if got := invoiceItemLabel(item); got != "Galaxy S25 (256GB)" {
		t.Errorf("got %q", got)
	}

	item.OptionValue = ""
	if got := invoiceItemLabel(item); got != "Galaxy S25" {
		t.Errorf("got %q, option suffix must be omitted", got)
	}
}

func TestRenderInvoicePDFProducesDocument(t *testing.T) {
	data := &invoiceData{
		Order: models.Order{
			OrderNumber:  "HT260830-ABCDEF",
			Subtotal:     21990000,
			ShippingCost: 0,
			TotalAmount:  21990000,
		},
		Items: []models.OrderItem{
			{ProductName: "Galaxy S25", OptionValue: "256GB", Quantity: 1, UnitPrice: 21990000, Subtotal: 21990000},
		},
		CustomerName:  "Nguyen Van A",
		CustomerEmail: "a@example.com",
	}

	buf, err := renderInvoicePDF(data)
	if err != nil {
		t.Fatalf("renderInvoicePDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("rendered PDF is empty")
	}
}
