package models

// ═══════════════════════════════════════════════════════════
// PayOS Payment Models
// ═══════════════════════════════════════════════════════════

// MaxPaymentRetries caps how many times a checkout may be re-attempted
// for the same order before the customer must start over.
const MaxPaymentRetries = 3

// PayOSCheckoutRequest asks for a payment link for an existing order.
type PayOSCheckoutRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	ReturnURL string `json:"return_url" binding:"required,url"`
	CancelURL string `json:"cancel_url" binding:"required,url"`
}

// PayOSItem is one line forwarded to the PayOS payment link.
type PayOSItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// PayOSCheckoutResponse is returned to the client after a link is created.
type PayOSCheckoutResponse struct {
	OrderID        string `json:"order_id"`
	PaymentLinkID  string `json:"payment_link_id"`
	CheckoutURL    string `json:"checkout_url"`
	QRCode         string `json:"qr_code,omitempty"`
	Amount         int64  `json:"amount"`
	RetriesUsed    int    `json:"retries_used"`
	RetriesAllowed int    `json:"retries_allowed"`
}

// PayOSWebhookPayload is the signed notification PayOS posts back.
type PayOSWebhookPayload struct {
	Code      string           `json:"code"`
	Desc      string           `json:"desc"`
	Data      PayOSWebhookData `json:"data"`
	Signature string           `json:"signature"`
}

type PayOSWebhookData struct {
	OrderCode       int64  `json:"orderCode"`
	Amount          int64  `json:"amount"`
	Description     string `json:"description"`
	Reference       string `json:"reference"`
	TransactionTime string `json:"transactionDateTime"`
}
