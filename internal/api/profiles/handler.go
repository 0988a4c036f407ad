package profiles

import (
	"errors"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/profiles"
	"portfolio-app/internal/infra/revalidate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	AvatarURL   *string `json:"avatar_url"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
}

// ------------------------------
// GET /profile (public, the portfolio owner's profile)
// ------------------------------
func GetOwner(c *gin.Context) {
	var owner profiles.Profile
	err := database.DB.
		Where("is_admin = ?", true).
		Order("created_at ASC").
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, owner)
}

// ------------------------------
// GET /dashboard/profile
// ------------------------------
func GetOwn(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var profile profiles.Profile
	if err := database.DB.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ------------------------------
// PUT /dashboard/profile
// The is_admin flag is deliberately not writable here; promotion goes
// through make_admin only.
// ------------------------------
func UpdateOwn(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		updates["linkedin_url"] = *req.LinkedinURL
	}
	if req.TwitterURL != nil {
		updates["twitter_url"] = *req.TwitterURL
	}

	if len(updates) > 0 {
		res := database.DB.Model(&profiles.Profile{}).
			Where("id = ?", userID).
			Updates(updates)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
	}

	var profile profiles.Profile
	if err := database.DB.First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	revalidate.Path("/dashboard/settings")

	c.JSON(http.StatusOK, profile)
}
