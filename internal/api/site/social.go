package site

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/infra/revalidate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /social-links (public)
// ------------------------------
func ListSocialLinks(c *gin.Context) {
	var links []site.SocialLink
	err := database.DB.Order("position ASC").Find(&links).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load social links"})
		return
	}
	c.JSON(http.StatusOK, links)
}

// ------------------------------
// PUT /dashboard/social-links
// Body: the full desired list in final order; replaces what is stored.
// ------------------------------
func ReplaceSocialLinks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req []SocialLinkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var links []site.SocialLink
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&site.SocialLink{}).Error; err != nil {
			return err
		}

		for i, in := range req {
			links = append(links, site.SocialLink{
				UserID:   userID,
				Platform: in.Platform,
				Label:    in.Label,
				URL:      in.URL,
				Position: i,
			})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save social links"})
		return
	}

	revalidate.Path("/")

	c.JSON(http.StatusOK, links)
}
