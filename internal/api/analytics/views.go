package analytics

import (
	"errors"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/blog"
	"portfolio-app/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// View counters are incremented server-side through named database
// functions. Reading the count, adding one and writing it back would
// lose increments under concurrent viewers, so the core never does
// that. A failed bump is logged and swallowed; the page view itself
// must not fail over analytics.

// ------------------------------
// POST /projects/:id/view
// ------------------------------
func BumpProjectView(c *gin.Context) {
	id := c.Param("id")

	var p projects.Project
	err := database.DB.Select("id").
		First(&p, "id = ? AND status = ?", id, projects.StatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	if err := database.DB.Exec("SELECT increment_view_count(?::uuid)", p.ID).Error; err != nil {
		log.Warn().Err(err).Str("project_id", p.ID).Msg("view count bump failed")
	}

	c.Status(http.StatusNoContent)
}

// ------------------------------
// POST /blog/:slug/view
// ------------------------------
func BumpBlogView(c *gin.Context) {
	slug := c.Param("slug")

	var post blog.Post
	err := database.DB.Select("id").
		First(&post, "slug = ? AND status = ?", slug, blog.StatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	if err := database.DB.Exec("SELECT increment_blog_view_count(?::uuid)", post.ID).Error; err != nil {
		log.Warn().Err(err).Str("post_id", post.ID).Msg("blog view count bump failed")
	}

	c.Status(http.StatusNoContent)
}
