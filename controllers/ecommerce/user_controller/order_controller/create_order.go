package order_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	flash_sale_cache "github.com/HTeam-Ecommerce/hteam-commerce-backend/cache"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Free shipping kicks in at 500k VND, flat 30k below that.
const (
	freeShippingThreshold = 500_000
	flatShippingCost      = 30_000
)

// generateOrderNumber builds a human-readable order number: date prefix plus
// the tail of a fresh UUIDv7, e.g. HT260829-4F2A9C.
func generateOrderNumber() string {
	id := uuid.Must(uuid.NewV7()).String()
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	return fmt.Sprintf("HT%s-%s", time.Now().Format("060102"), suffix[len(suffix)-6:])
}

// orderLine is one priced checkout line before it becomes an OrderItem.
type orderLine struct {
	product       *models.Product
	option        *models.ProductOption
	quantity      int
	unitPrice     float64
	regularPrice  float64
	flashSaleItem *models.FlashSaleItem
}

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Creates an order from cart lines. Unit prices are snapshotted at checkout: flash price when an active flash sale covers the SKU and has remaining quantity, effective catalog price otherwise. A live promotion code reduces the total.
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.ApiResponse{data=object{order_id=string,order_number=string,total_amount=number}} "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 409 {object} models.ApiResponse "Insufficient stock"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/user/orders [post]
func CreateOrder(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	now := time.Now()

	// Resolve each cart SKU to its product and option
	skus := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		skus = append(skus, item.SKU)
	}

	lines, err := resolveOrderLines(ctx, req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	// Overlay flash prices where an active campaign covers the SKU
	flashItems, err := activeFlashItemsBySKU(ctx, skus, now)
	if err != nil {
		log.Printf("[user.orders.create] ERROR flash lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}
	for i := range lines {
		if fi, ok := flashItems[lines[i].option.SKU]; ok && fi.Remaining() >= lines[i].quantity {
			lines[i].unitPrice = fi.FlashPrice
			lines[i].flashSaleItem = fi
		}
	}

	// Totals
	var subtotal float64
	for _, line := range lines {
		subtotal += line.unitPrice * float64(line.quantity)
	}

	shippingCost := float64(flatShippingCost)
	if subtotal >= freeShippingThreshold {
		shippingCost = 0
	}

	// Promotion (checkout honours the admin toggle)
	var discount float64
	var promotionCode *string
	if req.PromotionCode != nil && strings.TrimSpace(*req.PromotionCode) != "" {
		code := strings.ToUpper(strings.TrimSpace(*req.PromotionCode))

		var promotion models.Promotion
		if err := config.Gorm.WithContext(ctx).Where("code = ?", code).First(&promotion).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Promotion code not found"))
			return
		}
		if !promotion.IsLive(now) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Promotion is not active"))
			return
		}

		for _, line := range lines {
			if promotion.AppliesTo(line.option.SKU) {
				discount += promotion.DiscountOn(line.unitPrice * float64(line.quantity))
			}
		}
		if discount == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Promotion does not apply to any item in the cart"))
			return
		}
		promotionCode = &code
	}

	totalAmount := subtotal + shippingCost - discount
	if totalAmount < 0 {
		totalAmount = 0
	}

	addressJSON, err := json.Marshal(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address"))
		return
	}

	order := models.Order{
		UserID:          userID,
		OrderNumber:     generateOrderNumber(),
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   "pending",
		AddressSnapshot: addressJSON,
		PromotionCode:   promotionCode,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Discount:        discount,
		TotalAmount:     totalAmount,
		Status:          "pending",
		CustomerNotes:   req.CustomerNotes,
	}

	usedFlashSale := false
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order")
		}

		for _, line := range lines {
			// Claim flash quantity atomically; a concurrent sell-out drops
			// the whole checkout so the customer never pays a stale price.
			if line.flashSaleItem != nil {
				res := tx.Exec(`
					UPDATE flash_sale_items
					SET sold_quantity = sold_quantity + ?
					WHERE id = ? AND sold_quantity + ? <= limit_quantity
				`, line.quantity, line.flashSaleItem.ID, line.quantity)
				if res.Error != nil {
					return fmt.Errorf("failed to reserve flash sale quantity")
				}
				if res.RowsAffected == 0 {
					return fmt.Errorf("flash sale quantity for %s is sold out", line.option.SKU)
				}
				usedFlashSale = true
			}

			item := models.OrderItem{
				OrderID:      order.ID,
				ProductID:    line.product.ID,
				ProductName:  line.product.Name,
				SKU:          line.option.SKU,
				OptionValue:  line.option.Value,
				UnitPrice:    line.unitPrice,
				RegularPrice: line.regularPrice,
				Quantity:     line.quantity,
				Subtotal:     line.unitPrice * float64(line.quantity),
			}
			if line.flashSaleItem != nil {
				fsID := line.flashSaleItem.FlashSaleID.String()
				item.FlashSaleID = &fsID
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create order items")
			}
		}

		return nil
	})
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "sold out") {
			status = http.StatusConflict
		}
		c.JSON(status, models.ErrorResponse(c, err.Error()))
		return
	}

	if usedFlashSale {
		flash_sale_cache.Invalidate()
	}

	log.Printf("[user.orders.create] ✅ order created number=%s user=%s total=%.0f payment=%s",
		order.OrderNumber, userID, totalAmount, req.PaymentMethod)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", gin.H{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"total_amount": totalAmount,
	}))
}

// activeProductsBySKU scopes a query to active products carrying at least one
// of the given SKUs. The SKU list must go through IN so GORM expands it into a
// parenthesized placeholder list pgx can bind.
func activeProductsBySKU(db *gorm.DB, skus []string) *gorm.DB {
	return db.Where(`status = 'Active' AND EXISTS (
		SELECT 1
		FROM jsonb_array_elements(variants) AS v,
		     jsonb_array_elements(v->'options') AS opt
		WHERE opt->>'sku' IN ?
	)`, skus)
}

// resolveOrderLines maps each cart SKU to its product, option and regular
// pricing. Quantities for duplicate SKUs are merged.
func resolveOrderLines(ctx context.Context, items []models.OrderItemInput) ([]orderLine, error) {
	merged := make(map[string]int)
	orderOfSKUs := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := merged[item.SKU]; !seen {
			orderOfSKUs = append(orderOfSKUs, item.SKU)
		}
		merged[item.SKU] += item.Quantity
	}

	var products []models.Product
	if err := activeProductsBySKU(config.Gorm.WithContext(ctx), orderOfSKUs).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to validate products")
	}

	lines := make([]orderLine, 0, len(orderOfSKUs))
	for _, sku := range orderOfSKUs {
		var line *orderLine
		for pi := range products {
			if opt := products[pi].FindOption(sku); opt != nil {
				line = &orderLine{
					product:  &products[pi],
					option:   opt,
					quantity: merged[sku],
				}
				break
			}
		}
		if line == nil {
			return nil, fmt.Errorf("product with SKU %s not found or inactive", sku)
		}

		avail := line.option.Availability
		if !avail.ProductStatus {
			return nil, fmt.Errorf("SKU %s is not available for purchase", sku)
		}
		if avail.Quantity < line.quantity {
			return nil, fmt.Errorf("insufficient stock for SKU %s", sku)
		}
		if avail.MaxOrderQty > 0 && line.quantity > avail.MaxOrderQty {
			return nil, fmt.Errorf("quantity for SKU %s exceeds the per-order limit", sku)
		}

		line.unitPrice = pricing.EffectivePrice(avail)
		line.regularPrice = avail.RegularPrice
		if line.unitPrice <= 0 {
			return nil, fmt.Errorf("SKU %s has no purchasable price", sku)
		}

		lines = append(lines, *line)
	}

	return lines, nil
}

// activeFlashItemsBySKU returns the flash-sale items covering the given SKUs
// whose campaign window includes now, keyed by SKU.
func activeFlashItemsBySKU(ctx context.Context, skus []string, now time.Time) (map[string]*models.FlashSaleItem, error) {
	var items []models.FlashSaleItem
	if err := config.Gorm.WithContext(ctx).
		Joins("JOIN flash_sales fs ON fs.id = flash_sale_items.flash_sale_id").
		Where("flash_sale_items.sku IN ? AND fs.start_time <= ? AND fs.end_time >= ?", skus, now, now).
		Find(&items).Error; err != nil {
		return nil, err
	}

	bySKU := make(map[string]*models.FlashSaleItem, len(items))
	for i := range items {
		bySKU[items[i].SKU] = &items[i]
	}
	return bySKU, nil
}
