package gallery

import (
	"errors"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/gallery"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/infra/revalidate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateItemRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  *string  `json:"description"`
	ImageURL     string   `json:"image_url" binding:"required"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Category     *string  `json:"category"`
	Tags         []string `json:"tags"`
	Position     *int     `json:"position"`
	Featured     *bool    `json:"featured"`
	Status       *string  `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateItemRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Category     *string   `json:"category"`
	Tags         *[]string `json:"tags"`
	Position     *int      `json:"position"`
	Featured     *bool     `json:"featured"`
	Status       *string   `json:"status" binding:"omitempty,oneof=draft published"`
}

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// ------------------------------
// GET /gallery (public, published only)
// ------------------------------
func ListPublished(c *gin.Context) {
	var settings site.Settings
	if err := database.DB.First(&settings, "id = ?", true).Error; err != nil || !settings.EnableGallery {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var items []gallery.Item
	err := database.DB.
		Where("status = ?", gallery.StatusPublished).
		Order("position ASC, created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ------------------------------
// GET /dashboard/gallery (drafts included)
// ------------------------------
func ListOwn(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var items []gallery.Item
	err := database.DB.
		Where("user_id = ?", userID).
		Order("position ASC, created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ------------------------------
// POST /dashboard/gallery
// ------------------------------
func Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	item := gallery.Item{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Tags:         req.Tags,
	}
	if req.Position != nil {
		item.Position = *req.Position
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Status != nil {
		item.Status = gallery.Status(*req.Status)
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gallery item"})
		return
	}

	revalidate.Path("/dashboard/gallery")

	c.JSON(http.StatusCreated, item)
}

// ------------------------------
// PUT /dashboard/gallery/:id
// ------------------------------
func Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var item gallery.Item
	if err := database.DB.First(&item, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gallery item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery item"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		err := database.DB.Model(&gallery.Item{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery item"})
			return
		}
	}

	if req.Tags != nil {
		if err := database.DB.Model(&item).Update("tags", *req.Tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery item"})
			return
		}
	}

	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery item"})
		return
	}

	revalidate.Path("/dashboard/gallery")

	c.JSON(http.StatusOK, item)
}

// ------------------------------
// DELETE /dashboard/gallery/:id
// ------------------------------
func Delete(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&gallery.Item{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery item not found"})
		return
	}

	revalidate.Path("/dashboard/gallery")

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
