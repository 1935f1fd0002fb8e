package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Promotion Model (GORM)
// ═══════════════════════════════════════════════════════════

// Promotion is a coupon/discount rule applicable to a set of SKUs within a
// validity window. Exactly one of DiscountPercent / DiscountAmount is
// expected to be set, but the backend does not enforce mutual exclusion.
type Promotion struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code            string    `json:"code" gorm:"not null;uniqueIndex"`
	Description     string    `json:"description"`
	DiscountPercent *float64  `json:"discount_percent,omitempty" gorm:"type:numeric(5,2)"`
	DiscountAmount  *float64  `json:"discount_amount,omitempty" gorm:"type:numeric(14,2)"`
	ValidFrom       time.Time `json:"valid_from" gorm:"not null;index"`
	ValidTo         time.Time `json:"valid_to" gorm:"not null;index"`
	IsActive        bool      `json:"is_active" gorm:"not null;default:true;index"`
	SKUs            TagsList  `json:"skus" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Promotion) TableName() string {
	return "promotions"
}

// ═══════════════════════════════════════════════════════════
// Activity Predicates
// ═══════════════════════════════════════════════════════════
// The storefront carousel and the admin list screen historically disagreed
// on what "active" means. Both checks are kept as separate predicates so
// each surface states which one it uses.

// InWindow reports whether now falls inside [ValidFrom, ValidTo] inclusive,
// ignoring the stored IsActive flag. Used by the storefront carousel.
func (p *Promotion) InWindow(now time.Time) bool {
	return !now.Before(p.ValidFrom) && !now.After(p.ValidTo)
}

// IsLive requires both the stored IsActive flag and the validity window.
// Used wherever the admin toggle must be honoured.
func (p *Promotion) IsLive(now time.Time) bool {
	return p.IsActive && p.InWindow(now)
}

// AppliesTo reports whether the promotion covers the given SKU. An empty
// SKU set means the promotion applies storewide.
func (p *Promotion) AppliesTo(sku string) bool {
	if len(p.SKUs) == 0 {
		return true
	}
	for _, s := range p.SKUs {
		if s == sku {
			return true
		}
	}
	return false
}

// DiscountOn returns the discount amount for a given price. Percentage
// takes precedence when both fields are set. Never exceeds the price.
func (p *Promotion) DiscountOn(price float64) float64 {
	var discount float64
	switch {
	case p.DiscountPercent != nil:
		discount = price * (*p.DiscountPercent / 100)
	case p.DiscountAmount != nil:
		discount = *p.DiscountAmount
	}
	if discount > price {
		discount = price
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type PromotionRequest struct {
	Code            string    `json:"code" binding:"required" example:"SUMMER10"`
	Description     string    `json:"description" example:"10% off selected phones"`
	DiscountPercent *float64  `json:"discount_percent" binding:"omitempty,min=0,max=100"`
	DiscountAmount  *float64  `json:"discount_amount" binding:"omitempty,min=0"`
	ValidFrom       time.Time `json:"valid_from" binding:"required"`
	ValidTo         time.Time `json:"valid_to" binding:"required"`
	IsActive        *bool     `json:"is_active"`
	SKUs            []string  `json:"skus"`
}

type UpdatePromotionRequest struct {
	Description     *string    `json:"description"`
	DiscountPercent *float64   `json:"discount_percent" binding:"omitempty,min=0,max=100"`
	DiscountAmount  *float64   `json:"discount_amount" binding:"omitempty,min=0"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
	IsActive        *bool      `json:"is_active"`
	SKUs            *[]string  `json:"skus"`
}

// ValidatePromotionRequest asks whether a code applies to a cart line.
type ValidatePromotionRequest struct {
	Code  string  `json:"code" binding:"required"`
	SKU   string  `json:"sku" binding:"required"`
	Price float64 `json:"price" binding:"required,min=0"`
}

type ValidatePromotionResponse struct {
	Code       string  `json:"code"`
	Applicable bool    `json:"applicable"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"final_price"`
	Reason     string  `json:"reason,omitempty"`
}
