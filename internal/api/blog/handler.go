package blog

import (
	"errors"
	"net/http"
	"time"

	"portfolio-app/database"
	"portfolio-app/internal/domain/blog"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/infra/revalidate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func blogEnabled() bool {
	var settings site.Settings
	if err := database.DB.First(&settings, "id = ?", true).Error; err != nil {
		return false
	}
	return settings.EnableBlog
}

// ------------------------------
// GET /blog (public, published only)
// ------------------------------
func ListPublished(c *gin.Context) {
	if !blogEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var posts []blog.Post
	err := database.DB.
		Where("status = ?", blog.StatusPublished).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ------------------------------
// GET /blog/:slug (public, published only)
// ------------------------------
func GetPublished(c *gin.Context) {
	if !blogEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	slug := c.Param("slug")

	var post blog.Post
	err := database.DB.First(&post, "slug = ? AND status = ?", slug, blog.StatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ------------------------------
// GET /dashboard/blog (drafts included)
// ------------------------------
func ListOwn(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var posts []blog.Post
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ------------------------------
// POST /dashboard/blog
// ------------------------------
func Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	post := blog.Post{
		UserID:        userID,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Tags:          req.Tags,
	}
	if req.Slug != nil && *req.Slug != "" {
		post.Slug = *req.Slug
	} else {
		post.Slug = makeSlug(req.Title)
	}
	if req.Status != nil {
		post.Status = blog.Status(*req.Status)
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	post.PublishedAt = publishedAtOnTransition(nil, post.Status, time.Now())

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	revalidate.Path("/dashboard/blog")

	c.JSON(http.StatusCreated, post)
}

// ------------------------------
// PUT /dashboard/blog/:id
// ------------------------------
func Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var post blog.Post
	if err := database.DB.First(&post, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil && *req.Slug != "" {
		updates["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.CoverImageURL != nil {
		updates["cover_image_url"] = *req.CoverImageURL
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Status != nil {
		newStatus := blog.Status(*req.Status)
		updates["status"] = newStatus
		if at := publishedAtOnTransition(post.PublishedAt, newStatus, time.Now()); at != nil {
			updates["published_at"] = *at
		}
	}

	if len(updates) > 0 {
		err := database.DB.Model(&blog.Post{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
	}

	if req.Tags != nil {
		if err := database.DB.Model(&post).Update("tags", *req.Tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
	}

	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	revalidate.Path("/dashboard/blog")

	c.JSON(http.StatusOK, post)
}

// ------------------------------
// DELETE /dashboard/blog/:id
// ------------------------------
func Delete(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&blog.Post{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	revalidate.Path("/dashboard/blog")

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
