package product_controller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID and its associated Cloudinary images
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	// Step 1: Parse and validate product ID
	idParam := c.Param("id")
	productID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Find product and check if it has Cloudinary images
	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Select("id, media").
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	hasCloudinaryImages := product.Media.Primary.URL != "" || len(product.Media.Other) > 0

	// Step 3: Delete from database
	if err := config.Gorm.WithContext(ctx).Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product: "+err.Error()))
		return
	}

	// Step 4: Delete Cloudinary images in background (don't block response)
	if hasCloudinaryImages && cloudinaryService != nil {
		images := make([]models.Image, 0, 1+len(product.Media.Other))
		if product.Media.Primary.URL != "" {
			images = append(images, product.Media.Primary)
		}
		images = append(images, product.Media.Other...)

		go func(imgs []models.Image) {
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			for _, img := range imgs {
				publicID := extractPublicIDFromURL(img.URL)
				if publicID == "" {
					continue
				}
				if err := cloudinaryService.DeleteImage(deleteCtx, publicID); err != nil {
					fmt.Printf("⚠️  Warning: Failed to delete Cloudinary image %s: %v\n", publicID, err)
				}
			}
		}(images)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]string{
		"id": productID.String(),
	}))
}
