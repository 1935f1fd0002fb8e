package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type Image struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary Image   `json:"primary" binding:"required"`
	Other   []Image `json:"other,omitempty"`
}

// Availability describes whether and at what price a single option can be
// bought. SalePrice of 0 means no sale; both prices 0 means not for sale.
type Availability struct {
	Quantity      int     `json:"quantity" binding:"min=0" example:"100"`
	RegularPrice  float64 `json:"regular_price" binding:"min=0" example:"24990000"`
	SalePrice     float64 `json:"sale_price" binding:"min=0" example:"21990000"`
	ProductStatus bool    `json:"product_status" example:"true"`
	MinOrderQty   int     `json:"min_order_qty,omitempty" example:"1"`
	MaxOrderQty   int     `json:"max_order_qty,omitempty" example:"5"`
}

// ReviewSummary is the aggregate rating carried on an option snapshot.
type ReviewSummary struct {
	Average float64 `json:"average" example:"4.5"`
	Count   int     `json:"count" example:"12"`
}

// ProductOption is one concrete purchasable SKU within a variant
// (e.g. the "Red" option of a "Color" variant).
type ProductOption struct {
	SKU          string         `json:"sku" binding:"required" example:"IP15PM-256-RED"`
	Value        string         `json:"value" binding:"required" example:"Red"`
	Availability Availability   `json:"availability" binding:"required"`
	Images       []Image        `json:"images,omitempty"`
	Review       *ReviewSummary `json:"review,omitempty"`
}

// ProductVariant groups the purchasable options of one configuration axis
// (e.g. "256GB" grouping its colour options).
type ProductVariant struct {
	Code    string            `json:"code" binding:"required" example:"IP15PM-256"`
	Name    string            `json:"name" binding:"required" example:"iPhone 15 Pro Max 256GB"`
	Options []ProductOption   `json:"options" binding:"required,dive"`
	Specs   map[string]string `json:"specs,omitempty"`
}

// Custom slice types so GORM can store them as JSONB
type (
	TagsList     []string
	VariantsList []ProductVariant
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string            `json:"name" gorm:"not null;index"`
	Description string            `json:"description" gorm:"not null"`
	Brand       string            `json:"brand" gorm:"index"`
	Category    string            `json:"category" gorm:"index"`
	Status      string            `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Tags        TagsList          `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Media       ProductMedia      `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Variants    VariantsList      `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Specs       datatypes.JSONMap `json:"specs" gorm:"type:jsonb;not null;default:'{}'"`
	Views       int               `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt   time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// AllAvailabilities flattens the availabilities of every option across every
// variant, the input shape the pricing helpers work on.
func (p *Product) AllAvailabilities() []Availability {
	avail := make([]Availability, 0)
	for _, v := range p.Variants {
		for _, opt := range v.Options {
			avail = append(avail, opt.Availability)
		}
	}
	return avail
}

// FindOption locates an option by SKU across all variants.
func (p *Product) FindOption(sku string) *ProductOption {
	for vi := range p.Variants {
		for oi := range p.Variants[vi].Options {
			if p.Variants[vi].Options[oi].SKU == sku {
				return &p.Variants[vi].Options[oi]
			}
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name        string            `json:"name" binding:"required" example:"iPhone 15 Pro Max"`
	Description string            `json:"description" binding:"required" example:"Flagship 2023 iPhone"`
	Brand       string            `json:"brand" binding:"required" example:"Apple"`
	Category    string            `json:"category" binding:"required" example:"Smartphones"`
	Status      string            `json:"status" binding:"required,oneof=Active Draft" example:"Draft"`
	Tags        []string          `json:"tags" binding:"required" example:"['apple', 'flagship']"`
	Media       ProductMedia      `json:"media" binding:"required"`
	Variants    []ProductVariant  `json:"variants" binding:"required,dive"`
	Specs       map[string]string `json:"specs"`
}

type UpdateProductRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Brand       *string            `json:"brand"`
	Category    *string            `json:"category"`
	Status      *string            `json:"status" binding:"omitempty,oneof=Active Draft"`
	Tags        *[]string          `json:"tags"`
	Media       *ProductMedia      `json:"media"`
	Variants    *[]ProductVariant  `json:"variants"`
	Specs       *map[string]string `json:"specs"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductBase struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductStatsResponseItem struct {
	Type               string  `json:"type"`
	TotalProducts      int     `json:"total_products"`
	ActiveProducts     int     `json:"active_products"`
	DraftProducts      int     `json:"draft_products"`
	TotalInventory     int     `json:"total_inventory"`
	TaggedProducts     int     `json:"tagged_products"`
	LowStockProducts   int     `json:"low_stock_products"`
	PercentageLowStock float64 `json:"percentage_low_stock"`
	PercentageActive   float64 `json:"percentage_active"`
}

type ProductResponse struct {
	BasicInfo ProductBase       `json:"basic_info"`
	Media     ProductMedia      `json:"media"`
	Variants  []ProductVariant  `json:"variants"`
	Specs     map[string]string `json:"specs,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// TagsList methods
func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// VariantsList methods
func (v *VariantsList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantsList")
	}
	return json.Unmarshal(bytes, v)
}

func (v VariantsList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]ProductVariant{})
	}
	return json.Marshal(v)
}

// ProductMedia methods
func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
