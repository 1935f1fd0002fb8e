package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderStatusFlow maps each status to the statuses an admin may move it to.
// Delivered and cancelled are terminal.
var orderStatusFlow = map[string][]string{
	"pending":   {"confirmed", "cancelled"},
	"confirmed": {"shipped", "cancelled"},
	"shipped":   {"delivered", "cancelled"},
	"delivered": {},
	"cancelled": {},
}

func canTransitionOrder(from, to string) bool {
	for _, next := range orderStatusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

// statusMilestoneColumn names the timestamp column stamped the first time an
// order enters a status. Cancellation carries no milestone column.
func statusMilestoneColumn(status string) string {
	switch status {
	case "confirmed":
		return "confirmed_at"
	case "shipped":
		return "shipped_at"
	case "delivered":
		return "delivered_at"
	default:
		return ""
	}
}

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Move an order along its lifecycle (pending -> confirmed -> shipped -> delivered; any non-terminal status can be cancelled). admin_notes is optional, but required when cancelling.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderStatusResponse}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 409 {object} models.ApiResponse "Transition not allowed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	req.Status = strings.TrimSpace(strings.ToLower(req.Status))

	if req.Status == "cancelled" {
		if req.AdminNotes == nil || strings.TrimSpace(*req.AdminNotes) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "admin_notes is required when cancelling an order"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.Gorm.WithContext(ctx).
		Select("id", "order_number", "status", "admin_notes").
		First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.update] fetch failed id=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	if !canTransitionOrder(order.Status, req.Status) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c,
			fmt.Sprintf("Cannot move order from %s to %s", order.Status, req.Status)))
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	if col := statusMilestoneColumn(req.Status); col != "" {
		updates[col] = gorm.Expr("COALESCE(" + col + ", NOW())")
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.order.update] update failed id=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	log.Printf("[admin.order.update] order=%s %s -> %s", order.OrderNumber, order.Status, req.Status)

	notes := order.AdminNotes
	if req.AdminNotes != nil {
		notes = req.AdminNotes
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", models.UpdateOrderStatusResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      req.Status,
		AdminNotes:  notes,
	}))
}
