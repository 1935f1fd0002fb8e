package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SendOrderInvoicePDF godoc
// @Summary Send order invoice PDF to customer
// @Description Generate and send an invoice PDF to the customer
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/admin/orders/{id}/send-invoice [post]
func SendOrderInvoicePDF(c *gin.Context) {
	orderId := c.Param("id")
	if _, err := uuid.Parse(orderId); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	data, err := loadInvoiceData(ctx, orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[order.send-invoice] load failed for order %s: %v", orderId, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if data.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer email not found"))
		return
	}

	pdfBuffer, err := renderInvoicePDF(data)
	if err != nil {
		log.Printf("[order.send-invoice] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	serviceItems := make([]services.OrderInvoiceItem, len(data.Items))
	for i, item := range data.Items {
		serviceItems[i] = services.OrderInvoiceItem{
			ProductName: item.ProductName,
			OptionValue: item.OptionValue,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}

	// Email delivery happens off the request path.
	go func() {
		resendClient := services.NewResendClient()

		emailData := services.OrderInvoicePDFEmailData{
			CustomerName:  data.CustomerName,
			CustomerEmail: data.CustomerEmail,
			OrderNumber:   data.Order.OrderNumber,
			OrderDate:     data.Order.CreatedAt.Format("02/01/2006"),
			Items:         serviceItems,
			Subtotal:      data.Order.Subtotal,
			ShippingCost:  data.Order.ShippingCost,
			Discount:      data.Order.Discount,
			TotalAmount:   data.Order.TotalAmount,
			PDFContent:    pdfBuffer.Bytes(),
		}

		if err := resendClient.SendOrderInvoicePDFEmail(emailData); err != nil {
			log.Printf("[order.send-invoice] failed to send email for order %s: %v", orderId, err)
		} else {
			log.Printf("[order.send-invoice] invoice email sent to %s for order %s", data.CustomerEmail, orderId)
		}
	}()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice email sent to customer", map[string]interface{}{
		"order_id":       data.Order.ID,
		"customer_email": data.CustomerEmail,
	}))
}
