package order_controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	invoiceInk   = color.Color{Red: 38, Green: 38, Blue: 34}
	invoiceFaint = color.Color{Red: 121, Green: 119, Blue: 109}
)

// invoiceData is everything the invoice needs, resolved up front so the
// download and email paths share one loader.
type invoiceData struct {
	Order         models.Order
	Items         []models.OrderItem
	CustomerName  string
	CustomerEmail string
}

// loadInvoiceData fetches the order, its items and the customer snapshot.
// Not-found surfaces as gorm.ErrRecordNotFound from the order fetch.
func loadInvoiceData(ctx context.Context, orderID string) (*invoiceData, error) {
	var data invoiceData

	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", orderID).
		First(&data.Order).Error; err != nil {
		return nil, err
	}

	if err := config.Gorm.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&data.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}

	var customer struct {
		Email string
		Name  string
	}
	if err := config.Gorm.WithContext(ctx).
		Table("users").
		Select("email, name").
		Where("id = ?", data.Order.UserID).
		Scan(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	data.CustomerName = customer.Name
	data.CustomerEmail = customer.Email

	return &data, nil
}

// vnd formats an amount in Vietnamese dong. No decimals.
func vnd(amount float64) string {
	return fmt.Sprintf("%.0f VND", amount)
}

// invoiceItemLabel is the description cell: product name plus the chosen
// option when the product has one.
func invoiceItemLabel(item models.OrderItem) string {
	if item.OptionValue == "" {
		return item.ProductName
	}
	return fmt.Sprintf("%s (%s)", item.ProductName, item.OptionValue)
}

// invoiceTotals lists the summary rows above the grand total. Discount only
// shows when one applied.
func invoiceTotals(o *models.Order) [][2]string {
	rows := [][2]string{
		{"Subtotal", vnd(o.Subtotal)},
		{"Shipping", vnd(o.ShippingCost)},
	}
	if o.Discount > 0 {
		rows = append(rows, [2]string{"Discount", "-" + vnd(o.Discount)})
	}
	return rows
}

// renderInvoicePDF lays the invoice out on A4. Column split is 6/2/2/2
// (description, qty, unit price, line total).
func renderInvoicePDF(data *invoiceData) (*bytes.Buffer, error) {
	ink := func(size float64) props.Text { return props.Text{Size: size, Color: invoiceInk} }
	inkBold := func(size float64) props.Text { return props.Text{Size: size, Style: consts.Bold, Color: invoiceInk} }
	faint := func(size float64) props.Text { return props.Text{Size: size, Color: invoiceFaint} }
	right := func(p props.Text) props.Text { p.Align = consts.Right; return p }

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Masthead
	m.Row(15, func() {
		m.Col(12, func() { m.Text("INVOICE", inkBold(24)) })
	})
	m.Row(10, func() {
		m.Col(12, func() { m.Text("HTEAM STORE", inkBold(16)) })
	})
	m.Row(5, func() {
		m.Col(12, func() { m.Text("support@hteam.shop", faint(9)) })
	})
	m.Row(8, func() {})

	// Bill-to on the left, invoice metadata on the right
	billTo := [][2]props.Text{
		{inkBold(8), right(inkBold(8))},
		{inkBold(10), right(ink(10))},
		{faint(9), right(faint(9))},
	}
	left := []string{"BILL TO", data.CustomerName, data.CustomerEmail}
	rightCol := []string{
		"INVOICE DETAILS",
		fmt.Sprintf("Invoice #%s", data.Order.OrderNumber),
		fmt.Sprintf("Date: %s", data.Order.CreatedAt.Format("02/01/2006")),
	}
	for i := range billTo {
		m.Row(5, func() {
			m.Col(6, func() { m.Text(left[i], billTo[i][0]) })
			m.Col(6, func() { m.Text(rightCol[i], billTo[i][1]) })
		})
	}
	m.Row(8, func() {})

	// Line items
	m.Row(6, func() {
		m.Col(6, func() { m.Text("Description", inkBold(8)) })
		m.Col(2, func() { m.Text("Qty", right(inkBold(8))) })
		m.Col(2, func() { m.Text("Price", right(inkBold(8))) })
		m.Col(2, func() { m.Text("Total", right(inkBold(8))) })
	})
	for _, item := range data.Items {
		m.Row(6, func() {
			m.Col(6, func() { m.Text(invoiceItemLabel(item), ink(9)) })
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", item.Quantity), right(ink(9))) })
			m.Col(2, func() { m.Text(vnd(item.UnitPrice), right(ink(9))) })
			m.Col(2, func() { m.Text(vnd(item.Subtotal), right(ink(9))) })
		})
	}
	m.Row(8, func() {})

	// Summary
	for _, row := range invoiceTotals(&data.Order) {
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() { m.Text(row[0], right(faint(9))) })
			m.Col(2, func() { m.Text(row[1], right(ink(9))) })
		})
	}
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() { m.Text("Total", right(inkBold(12))) })
		m.Col(2, func() { m.Text(vnd(data.Order.TotalAmount), right(inkBold(12))) })
	})
	m.Row(12, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() { m.Text("Thank you for your business!", inkBold(8)) })
	})
	m.Row(5, func() {
		m.Col(12, func() { m.Text("© 2026 HTeam Store. All rights reserved.", faint(8)) })
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}
	return &buf, nil
}
