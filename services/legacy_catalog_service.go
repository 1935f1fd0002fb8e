package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pagination"
)

// LegacyCatalogClient wraps the legacy commerce API this service is being
// migrated away from. Its list endpoints disagree on pagination: some are
// 0-indexed with totalElements, some 1-indexed with totalItems, one
// returns a bare array. The convention is pinned per endpoint below and
// every response goes through pagination.Normalize.
type LegacyCatalogClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// Legacy endpoints and their registered pagination conventions. This table
// is the only place indexing knowledge lives; call sites never do ±1
// arithmetic themselves.
const (
	legacyVariantsPath    = "/api/products/variants"
	legacyFlashSalesPath  = "/api/flash-sales/items"
	legacyPromotionsPath  = "/api/promotions"
)

var legacyConventions = map[string]pagination.Convention{
	legacyVariantsPath:   pagination.ZeroIndexed,
	legacyFlashSalesPath: pagination.OneIndexed,
	legacyPromotionsPath: pagination.OneIndexed, // bare array in practice; convention unused
}

// NewLegacyCatalogClient builds a client from environment configuration.
func NewLegacyCatalogClient() (*LegacyCatalogClient, error) {
	baseURL := os.Getenv("LEGACY_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("LEGACY_API_URL not set")
	}

	return &LegacyCatalogClient{
		baseURL: baseURL,
		token:   os.Getenv("LEGACY_API_TOKEN"),
		http:    &http.Client{Timeout: 20 * time.Second},
	}, nil
}

// LegacyVariantDTO mirrors the legacy variant list payload.
type LegacyVariantDTO struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Product struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Brand       string `json:"brand"`
		Category    string `json:"category"`
	} `json:"product"`
	Options []LegacyOptionDTO `json:"options"`
	Specs   map[string]string `json:"specs"`
}

type LegacyOptionDTO struct {
	SKU          string `json:"sku"`
	Value        string `json:"value"`
	Availability struct {
		Quantity      int     `json:"quantity"`
		RegularPrice  float64 `json:"regularPrice"`
		SalePrice     float64 `json:"salePrice"`
		ProductStatus bool    `json:"productStatus"`
	} `json:"availability"`
}

// LegacyFlashSaleItemDTO mirrors the legacy flash-sale item payload.
type LegacyFlashSaleItemDTO struct {
	SKU           string          `json:"sku"`
	FlashPrice    float64         `json:"flashPrice"`
	LimitQuantity int             `json:"limitQuantity"`
	SoldQuantity  int             `json:"soldQuantity"`
	EndTime       time.Time       `json:"endTime"`
	Option        LegacyOptionDTO `json:"option"`
}

// LegacyPromotionDTO mirrors the legacy promotion payload.
type LegacyPromotionDTO struct {
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent *float64  `json:"discountPercent"`
	DiscountAmount  *float64  `json:"discountAmount"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	IsActive        bool      `json:"isActive"`
	SKUs            []string  `json:"skus"`
}

// fetchPage GETs one legacy list endpoint and normalizes whatever shape
// comes back. HTTP/transport failures are real errors; shape problems are
// not (they degrade to an empty page).
func (l *LegacyCatalogClient) fetchPage(ctx context.Context, path string, req pagination.PageRequest) (pagination.Page, error) {
	conv := legacyConventions[path]

	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", req.External(conv)))
	q.Set("size", fmt.Sprintf("%d", req.Size))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		l.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return pagination.Page{}, err
	}
	if l.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := l.http.Do(httpReq)
	if err != nil {
		return pagination.Page{}, fmt.Errorf("legacy request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pagination.Page{}, fmt.Errorf("legacy endpoint %s returned status %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pagination.Page{}, fmt.Errorf("failed to read legacy response: %w", err)
	}

	return pagination.Normalize(json.RawMessage(raw), req.Size, conv), nil
}

// FetchVariants pulls one page of product variants.
func (l *LegacyCatalogClient) FetchVariants(ctx context.Context, req pagination.PageRequest) ([]LegacyVariantDTO, pagination.Page, error) {
	page, err := l.fetchPage(ctx, legacyVariantsPath, req)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return pagination.Decode[LegacyVariantDTO](page), page, nil
}

// FetchFlashSaleItems pulls one page of flash-sale items.
func (l *LegacyCatalogClient) FetchFlashSaleItems(ctx context.Context, req pagination.PageRequest) ([]LegacyFlashSaleItemDTO, pagination.Page, error) {
	page, err := l.fetchPage(ctx, legacyFlashSalesPath, req)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return pagination.Decode[LegacyFlashSaleItemDTO](page), page, nil
}

// FetchPromotions pulls the promotion list (the legacy endpoint returns a
// bare array, so one call gets everything).
func (l *LegacyCatalogClient) FetchPromotions(ctx context.Context) ([]LegacyPromotionDTO, error) {
	page, err := l.fetchPage(ctx, legacyPromotionsPath, pagination.PageRequest{Index0: 0, Size: 100})
	if err != nil {
		return nil, err
	}
	return pagination.Decode[LegacyPromotionDTO](page), nil
}
