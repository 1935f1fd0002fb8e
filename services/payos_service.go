package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

const payosBaseURL = "https://api-merchant.payos.vn"

// PayOSClient wraps the PayOS merchant API (payment links + webhook
// signature verification).
type PayOSClient struct {
	clientID    string
	apiKey      string
	checksumKey string
	baseURL     string
	http        *http.Client
}

// NewPayOSClient builds a client from environment configuration.
func NewPayOSClient() *PayOSClient {
	clientID := os.Getenv("PAYOS_CLIENT_ID")
	apiKey := os.Getenv("PAYOS_API_KEY")
	checksumKey := os.Getenv("PAYOS_CHECKSUM_KEY")
	if clientID == "" || apiKey == "" || checksumKey == "" {
		log.Fatal("PAYOS_CLIENT_ID, PAYOS_API_KEY and PAYOS_CHECKSUM_KEY must be set")
	}

	baseURL := os.Getenv("PAYOS_BASE_URL")
	if baseURL == "" {
		baseURL = payosBaseURL
	}

	return &PayOSClient{
		clientID:    clientID,
		apiKey:      apiKey,
		checksumKey: checksumKey,
		baseURL:     baseURL,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

// PaymentLinkItem is one line item forwarded to the payment page.
type PaymentLinkItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// PaymentLinkRequest is the create-payment-link payload.
type PaymentLinkRequest struct {
	OrderCode   int64             `json:"orderCode"`
	Amount      int64             `json:"amount"`
	Description string            `json:"description"`
	Items       []PaymentLinkItem `json:"items,omitempty"`
	ReturnURL   string            `json:"returnUrl"`
	CancelURL   string            `json:"cancelUrl"`
	Signature   string            `json:"signature"`
}

// PaymentLinkData is the useful part of the create response.
type PaymentLinkData struct {
	PaymentLinkID string `json:"paymentLinkId"`
	CheckoutURL   string `json:"checkoutUrl"`
	QRCode        string `json:"qrCode"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}

type paymentLinkResponse struct {
	Code string          `json:"code"`
	Desc string          `json:"desc"`
	Data PaymentLinkData `json:"data"`
}

// signCreateRequest computes the HMAC-SHA256 signature PayOS expects over
// the alphabetically ordered key=value string.
func (p *PayOSClient) signCreateRequest(req *PaymentLinkRequest) string {
	payload := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		req.Amount, req.CancelURL, req.Description, req.OrderCode, req.ReturnURL)

	mac := hmac.New(sha256.New, []byte(p.checksumKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// CreatePaymentLink requests a hosted checkout page for an order.
// The caller's ctx bounds the request, so an abandoned checkout attempt is
// cancelled instead of racing a newer one.
func (p *PayOSClient) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLinkData, error) {
	req.Signature = p.signCreateRequest(&req)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v2/payment-requests", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-client-id", p.clientID)
	httpReq.Header.Set("x-api-key", p.apiKey)

	resp, err := p.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payos request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payos response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payos returned status %d: %s", resp.StatusCode, string(raw))
	}

	var linkResp paymentLinkResponse
	if err := json.Unmarshal(raw, &linkResp); err != nil {
		return nil, fmt.Errorf("failed to decode payos response: %w", err)
	}
	if linkResp.Code != "00" {
		return nil, fmt.Errorf("payos rejected request: %s (%s)", linkResp.Desc, linkResp.Code)
	}

	return &linkResp.Data, nil
}

// VerifyWebhookSignature checks the HMAC the webhook carries against the
// sorted key=value serialization of its data object.
func (p *PayOSClient) VerifyWebhookSignature(data map[string]any, signature string) bool {
	payload := canonicalQueryString(data)

	mac := hmac.New(sha256.New, []byte(p.checksumKey))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// canonicalQueryString renders a JSON object as key=value pairs joined by
// '&' with keys sorted alphabetically, the form PayOS signs.
func canonicalQueryString(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		switch v := data[k].(type) {
		case string:
			sb.WriteString(v)
		case float64:
			// JSON numbers decode as float64; PayOS amounts are integral
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		case bool:
			sb.WriteString(strconv.FormatBool(v))
		case nil:
			// empty value
		default:
			raw, _ := json.Marshal(v)
			sb.Write(raw)
		}
	}
	return sb.String()
}
