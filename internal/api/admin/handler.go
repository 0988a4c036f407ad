package admin

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/blog"
	"portfolio-app/internal/domain/gallery"
	"portfolio-app/internal/domain/messages"
	"portfolio-app/internal/domain/projects"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /dashboard/admin/stats
// ------------------------------
func Stats(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var projectCount, postCount, galleryCount, unreadMessages int64

	db := database.DB
	if err := db.Model(&projects.Project{}).Where("user_id = ?", userID).Count(&projectCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	db.Model(&blog.Post{}).Where("user_id = ?", userID).Count(&postCount)
	db.Model(&gallery.Item{}).Where("user_id = ?", userID).Count(&galleryCount)
	db.Model(&messages.Message{}).
		Where("user_id = ? AND status = ?", userID, messages.StatusUnread).
		Count(&unreadMessages)

	var totalViews int64
	db.Model(&projects.Project{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&totalViews)

	c.JSON(http.StatusOK, gin.H{
		"projects":        projectCount,
		"blog_posts":      postCount,
		"gallery_items":   galleryCount,
		"unread_messages": unreadMessages,
		"total_views":     totalViews,
	})
}

// ------------------------------
// POST /dashboard/admin/make-admin
// Promotion goes through the make_admin function so the is_admin column
// is never written by application-level updates.
// ------------------------------
func MakeAdmin(c *gin.Context) {
	var body struct {
		UserID string `json:"user_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Exec("SELECT make_admin(?::uuid)", body.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "promoted"})
}
