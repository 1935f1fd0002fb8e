package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

// ResendClient handles email sending via the Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@hteam.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from}
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type resendEmailRequest struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

// sendEmail posts one email to the Resend API.
func (r *ResendClient) sendEmail(req resendEmailRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend returned status %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}

// OrderInvoiceItem represents a line item in an invoice email
type OrderInvoiceItem struct {
	ProductName string
	OptionValue string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// OrderInvoicePDFEmailData holds data for the invoice email
type OrderInvoicePDFEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	OrderDate     string
	Items         []OrderInvoiceItem
	Subtotal      float64
	ShippingCost  float64
	Discount      float64
	TotalAmount   float64
	PDFContent    []byte
}

// formatVND renders an amount the way the storefront does (no decimals).
func formatVND(amount float64) string {
	return fmt.Sprintf("%.0f₫", amount)
}

// SendOrderInvoicePDFEmail sends an order invoice with an HTML summary and
// the PDF attached.
func (r *ResendClient) SendOrderInvoicePDFEmail(data OrderInvoicePDFEmailData) error {
	var itemsRows strings.Builder
	for _, item := range data.Items {
		name := item.ProductName
		if item.OptionValue != "" {
			name = fmt.Sprintf("%s (%s)", name, item.OptionValue)
		}
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">%s</td>
      </tr>
    `, name, item.Quantity, formatVND(item.Price), formatVND(item.Subtotal)))
	}

	discountRow := ""
	if data.Discount > 0 {
		discountRow = fmt.Sprintf(`
    <tr>
      <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Discount</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">-%s</td>
    </tr>
    `, formatVND(data.Discount))
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Invoice - %s</title></head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
      <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">INVOICE</h1>
    </td></tr>
    <tr><td style="padding: 16px 0;">
      <h2 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">HTEAM STORE</h2>
      <p style="margin: 4px 0; font-size: 14px; color: #79776d;">support@hteam.shop</p>
    </td></tr>
    <tr><td style="padding: 8px 0;">
      <p style="margin: 0; font-size: 14px; color: #262622;">Hi %s,</p>
      <p style="margin: 4px 0; font-size: 14px; color: #79776d;">Thank you for your order. Invoice #%s, placed on %s.</p>
    </td></tr>
    <tr><td>
      <table width="100%%" cellpadding="0" cellspacing="0" border="0">
        <tr style="border-bottom: 1px solid #e5e5e0;">
          <th style="padding: 8px 0; font-size: 12px; text-align: left; color: #79776d;">ITEM</th>
          <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">QTY</th>
          <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">PRICE</th>
          <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">SUBTOTAL</th>
        </tr>
        %s
        <tr style="border-top: 1px solid #e5e5e0;">
          <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Subtotal</td>
          <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">%s</td>
        </tr>
        <tr>
          <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Shipping</td>
          <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">%s</td>
        </tr>
        %s
        <tr>
          <td colspan="3" style="padding: 8px 0; font-size: 16px; font-weight: bold; color: #262622;">Total</td>
          <td style="padding: 8px 0; font-size: 16px; font-weight: bold; text-align: right; color: #262622;">%s</td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`,
		data.OrderNumber, data.CustomerName, data.OrderNumber, data.OrderDate,
		itemsRows.String(), formatVND(data.Subtotal), formatVND(data.ShippingCost),
		discountRow, formatVND(data.TotalAmount))

	req := resendEmailRequest{
		From:    r.from,
		To:      []string{data.CustomerEmail},
		Subject: fmt.Sprintf("Your HTeam Store invoice %s", data.OrderNumber),
		HTML:    html,
	}

	if len(data.PDFContent) > 0 {
		req.Attachments = []resendAttachment{{
			Filename: fmt.Sprintf("invoice-%s.pdf", data.OrderNumber),
			Content:  base64.StdEncoding.EncodeToString(data.PDFContent),
		}}
	}

	if err := r.sendEmail(req); err != nil {
		return err
	}

	log.Printf("✅ Invoice email sent for order %s to %s", data.OrderNumber, data.CustomerEmail)
	return nil
}
