package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin by clearing the token cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/logout [post]
func AdminLogout(c *gin.Context) {
	if adminID, exists := c.Get("adminID"); exists {
		log.Printf("[admin.logout] admin logging out: %s", adminID)
	}

	// Clear token cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
	log.Printf("[admin.logout] token cleared from cookie")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
