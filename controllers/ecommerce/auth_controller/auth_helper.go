package auth_controller

import (
	"fmt"
	"net/http"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/config"
	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func createOrUpdateUser(googleUser *models.GoogleUserInfo, googleID string) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.Gorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:     googleUser.Email,
				Name:      googleUser.Name,
				GoogleID:  &googleID,
				AvatarURL: &googleUser.Picture,
				Roles:     models.RoleList{{Name: "customer"}},
				Status:    "active",
			}

			if err := config.Gorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar_url": googleUser.Picture,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
	}

	if err := config.Gorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.AvatarURL = &googleUser.Picture

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
