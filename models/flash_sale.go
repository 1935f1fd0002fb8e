package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Flash Sale Models (GORM)
// ═══════════════════════════════════════════════════════════

// FlashSale is a time-boxed campaign grouping quantity-capped price
// overrides on specific SKUs.
type FlashSale struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	StartTime time.Time       `json:"start_time" gorm:"not null;index"`
	EndTime   time.Time       `json:"end_time" gorm:"not null;index"`
	Status    string          `json:"status" gorm:"not null;check:status IN ('Scheduled', 'Active', 'Ended');index"`
	Items     []FlashSaleItem `json:"items,omitempty" gorm:"foreignKey:FlashSaleID"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (f *FlashSale) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (FlashSale) TableName() string {
	return "flash_sales"
}

// InWindow reports whether now falls inside [StartTime, EndTime] inclusive.
func (f *FlashSale) InWindow(now time.Time) bool {
	return !now.Before(f.StartTime) && !now.After(f.EndTime)
}

// OptionSnapshot stores the product option as it looked when the flash sale
// was created, so the storefront screen renders without a catalog join.
type OptionSnapshot struct {
	ProductOption
}

func (o *OptionSnapshot) Scan(value interface{}) error {
	if value == nil {
		*o = OptionSnapshot{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OptionSnapshot")
	}
	return json.Unmarshal(bytes, o)
}

func (o OptionSnapshot) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// FlashSaleItem is one SKU override inside a campaign.
type FlashSaleItem struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	FlashSaleID   uuid.UUID      `json:"flash_sale_id" gorm:"type:uuid;not null;index"`
	SKU           string         `json:"sku" gorm:"not null;index"`
	ProductID     uuid.UUID      `json:"product_id" gorm:"type:uuid;not null;index"`
	FlashPrice    float64        `json:"flash_price" gorm:"type:numeric(14,2);not null;check:flash_price >= 0"`
	LimitQuantity int            `json:"limit_quantity" gorm:"not null;check:limit_quantity >= 0"`
	SoldQuantity  int            `json:"sold_quantity" gorm:"not null;default:0"`
	Option        OptionSnapshot `json:"option" gorm:"type:jsonb;not null;default:'{}'"`
	EndTime       time.Time      `json:"end_time" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (i *FlashSaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (FlashSaleItem) TableName() string {
	return "flash_sale_items"
}

// Remaining is the raw remaining quantity. Oversold items yield a negative
// value; callers rendering to customers must use DisplayRemaining.
func (i *FlashSaleItem) Remaining() int {
	return i.LimitQuantity - i.SoldQuantity
}

// DisplayRemaining floors the remaining quantity at 0 for display.
func (i *FlashSaleItem) DisplayRemaining() int {
	if r := i.Remaining(); r > 0 {
		return r
	}
	return 0
}

// SoldPercent returns how much of the limit has been sold, in [0, 100].
func (i *FlashSaleItem) SoldPercent() int {
	if i.LimitQuantity <= 0 {
		return 100
	}
	pct := i.SoldQuantity * 100 / i.LimitQuantity
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type FlashSaleItemRequest struct {
	SKU           string  `json:"sku" binding:"required"`
	ProductID     string  `json:"product_id" binding:"required"`
	FlashPrice    float64 `json:"flash_price" binding:"required,min=0"`
	LimitQuantity int     `json:"limit_quantity" binding:"required,min=1"`
}

type FlashSaleRequest struct {
	Name      string                 `json:"name" binding:"required" example:"Mid-year Mega Sale"`
	StartTime time.Time              `json:"start_time" binding:"required"`
	EndTime   time.Time              `json:"end_time" binding:"required"`
	Items     []FlashSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateFlashSaleRequest struct {
	Name      *string    `json:"name"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    *string    `json:"status" binding:"omitempty,oneof=Scheduled Active Ended"`
}

// FlashSaleItemResponse is the storefront view of one flash-sale item with
// derived fields resolved.
type FlashSaleItemResponse struct {
	SKU             string         `json:"sku"`
	FlashPrice      float64        `json:"flash_price"`
	RegularPrice    float64        `json:"regular_price"`
	DiscountPercent *int           `json:"discount_percent,omitempty"`
	Remaining       int            `json:"remaining"`
	SoldPercent     int            `json:"sold_percent"`
	LimitQuantity   int            `json:"limit_quantity"`
	EndTime         time.Time      `json:"end_time"`
	Option          OptionSnapshot `json:"option"`
}

type FlashSaleResponse struct {
	ID        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	StartTime time.Time               `json:"start_time"`
	EndTime   time.Time               `json:"end_time"`
	Status    string                  `json:"status"`
	Items     []FlashSaleItemResponse `json:"items"`
}
