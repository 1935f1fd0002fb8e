package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Order Models (GORM)
// ═══════════════════════════════════════════════════════════

// Order is a customer order. Prices are snapshotted at checkout time so
// later catalog or flash-sale changes never rewrite history.
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber     string         `json:"order_number" gorm:"not null;uniqueIndex"`
	PaymentMethod   string         `json:"payment_method" gorm:"not null;check:payment_method IN ('cod', 'payos')"`
	PaymentStatus   string         `json:"payment_status" gorm:"not null;default:'pending'"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot" gorm:"type:jsonb;not null;default:'{}'"`
	PromotionCode   *string        `json:"promotion_code,omitempty"`
	Subtotal        float64        `json:"subtotal" gorm:"type:numeric(14,2);not null"`
	ShippingCost    float64        `json:"shipping_cost" gorm:"type:numeric(14,2);not null;default:0"`
	Discount        float64        `json:"discount" gorm:"type:numeric(14,2);not null;default:0"`
	TotalAmount     float64        `json:"total_amount" gorm:"type:numeric(14,2);not null"`
	Status          string         `json:"status" gorm:"not null;default:'pending';index"`
	CustomerNotes   *string        `json:"customer_notes,omitempty"`
	AdminNotes      *string        `json:"admin_notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	ConfirmedAt     *time.Time     `json:"confirmed_at,omitempty"`
	ShippedAt       *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time     `json:"delivered_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one SKU line inside an order. UnitPrice is the effective
// price charged (flash price when bought from a flash sale).
type OrderItem struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName  string    `json:"product_name" gorm:"not null"`
	SKU          string    `json:"sku" gorm:"not null"`
	OptionValue  string    `json:"option_value"`
	UnitPrice    float64   `json:"unit_price" gorm:"type:numeric(14,2);not null"`
	RegularPrice float64   `json:"regular_price" gorm:"type:numeric(14,2);not null"`
	Quantity     int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Subtotal     float64   `json:"subtotal" gorm:"type:numeric(14,2);not null"`
	FlashSaleID  *string   `json:"flash_sale_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderWithItems combines order and its items
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

// ShippingAddress is snapshotted onto the order as JSONB.
type ShippingAddress struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Street   string `json:"street" binding:"required"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province" binding:"required"`
}

type OrderItemInput struct {
	SKU      string `json:"sku" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest for checkout
type CreateOrderRequest struct {
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Address       ShippingAddress  `json:"address" binding:"required"`
	PaymentMethod string           `json:"payment_method" binding:"required,oneof=cod payos"`
	PromotionCode *string          `json:"promotion_code,omitempty"`
	CustomerNotes *string          `json:"customer_notes,omitempty"`
}

// OrderHistoryResponse for the customer order-history list
type OrderHistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   float64   `json:"total_amount"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// CMSOrderListRow is the admin order-list projection.
type CMSOrderListRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
	ItemCount     int       `json:"item_count"`
	TotalQuantity int       `json:"total_quantity"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
}

// OrderItemWithImage is an order line annotated with the product's current
// primary image for the admin details screen.
type OrderItemWithImage struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	OptionValue  string    `json:"option_value"`
	UnitPrice    float64   `json:"unit_price"`
	RegularPrice float64   `json:"regular_price"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"`
	FlashSaleID  *string   `json:"flash_sale_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ProductImage *string   `json:"product_image,omitempty"`
}

// CMSOrderDetailsResponse is the admin order-details projection.
type CMSOrderDetailsResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	PaymentMethod      string `json:"payment_method"`
	PaymentStatus      string `json:"payment_status"`
	PaymentMethodLabel string `json:"payment_method_label"`

	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Discount     float64 `json:"discount"`
	TotalAmount  float64 `json:"total_amount"`

	PromotionCode *string `json:"promotion_code,omitempty"`
	CustomerNotes *string `json:"customer_notes,omitempty"`
	AdminNotes    *string `json:"admin_notes,omitempty"`

	AddressSnapshot string  `json:"address_snapshot"`
	FullName        *string `json:"full_name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Street          *string `json:"street,omitempty"`
	Ward            *string `json:"ward,omitempty"`
	District        *string `json:"district,omitempty"`
	Province        *string `json:"province,omitempty"`

	Items []OrderItemWithImage `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type OrderStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type OrderStatsResponse struct {
	TotalOrders                int                 `json:"total_orders"`
	ChangePercentFromLastMonth *float64            `json:"change_percent_from_last_month,omitempty"`
	CurrentMonthTotal          int                 `json:"current_month_total"`
	LastMonthTotal             int                 `json:"last_month_total"`
	Pending                    OrderStatsBreakdown `json:"pending"`
	Confirmed                  OrderStatsBreakdown `json:"confirmed"`
	Shipped                    OrderStatsBreakdown `json:"shipped"`
	Delivered                  OrderStatsBreakdown `json:"delivered"`
	Cancelled                  OrderStatsBreakdown `json:"cancelled"`
}

type UpdateOrderStatusResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
}
