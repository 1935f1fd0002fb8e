package promotion_controller

import (
	"net/http"
	"strings"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

// CreatePromotion godoc
// @Summary Create a promotion
// @Description Create a coupon/discount rule applicable to a set of SKUs within a validity window
// @Tags CMS - Promotions
// @Accept json
// @Produce json
// @Param promotion body models.PromotionRequest true "Promotion details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/promotions [post]
func CreatePromotion(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Validate discount fields and window
	if req.DiscountPercent == nil && req.DiscountAmount == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Either discount_percent or discount_amount is required"))
		return
	}
	if !req.ValidTo.After(req.ValidFrom) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "valid_to must be after valid_from"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 3: Reject duplicate codes (case-insensitive, stored uppercase)
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Promotion{}).
		Where("code = ?", code).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Promotion code already exists"))
		return
	}

	// Step 4: Create promotion (active by default)
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	promotion := models.Promotion{
		Code:            code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
		IsActive:        isActive,
		SKUs:            models.TagsList(req.SKUs),
	}

	if err := config.Gorm.WithContext(ctx).Create(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create promotion: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Promotion created successfully", promotion))
}
