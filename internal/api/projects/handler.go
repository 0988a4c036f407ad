package projects

import (
	"errors"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/projects"
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

// ------------------------------
// GET /projects (public, published only)
// ------------------------------
func ListPublished(c *gin.Context) {
	var settings site.Settings
	if err := database.DB.First(&settings, "id = ?", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	order := "created_at DESC"
	if settings.ShowFeaturedFirst {
		order = "featured DESC, created_at DESC"
	}

	var list []projects.Project
	err := publishedProjectsQuery(database.DB).
		Order(order).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /projects/:id (public, published only)
// ------------------------------
func GetPublished(c *gin.Context) {
	id := c.Param("id")

	var p projects.Project
	err := database.DB.
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&p, "id = ? AND status = ?", id, projects.StatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ------------------------------
// GET /dashboard/projects (drafts included)
// ------------------------------
func ListOwn(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []projects.Project
	err := userProjectsQuery(database.DB, userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// POST /dashboard/projects
// ------------------------------
func Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	p := projects.Project{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		ImageURL:     req.ImageURL,
	}
	if req.Status != nil {
		p.Status = projects.Status(*req.Status)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	revalidate.Path("/dashboard/projects")

	c.JSON(http.StatusCreated, p)
}

// ------------------------------
// PUT /dashboard/projects/:id
// ------------------------------
func Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := database.DB.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.LiveURL != nil {
		updates["live_url"] = *req.LiveURL
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) > 0 {
		err := database.DB.Model(&projects.Project{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
	}

	// Technologies goes through the model so the serializer applies.
	if req.Technologies != nil {
		err := database.DB.Model(&p).Update("technologies", *req.Technologies).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
	}

	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	revalidate.Path("/dashboard/projects")

	c.JSON(http.StatusOK, p)
}

// ------------------------------
// DELETE /dashboard/projects/:id
// ------------------------------
func Delete(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&projects.Project{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	revalidate.Path("/dashboard/projects")

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /dashboard/projects/:id/media
// ------------------------------
func GetMedia(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p projects.Project
	if err := database.DB.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	var media []projects.ProjectMedia
	err := database.DB.Where("project_id = ?", p.ID).
		Order("position ASC").
		Find(&media).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}

	c.JSON(http.StatusOK, media)
}

// ------------------------------
// PUT /dashboard/projects/:id/media
// Body: the full desired media list in final order. Replaces whatever
// is stored; an empty list deletes everything.
// ------------------------------
func ReconcileMedia(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var submitted []MediaInput
	if err := c.ShouldBindJSON(&submitted); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p projects.Project
	if err := database.DB.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	media, err := reconcileMedia(database.DB, p.ID, submitted)
	if err != nil {
		if errors.Is(err, ErrDuplicateMediaID) || errors.Is(err, ErrForeignMediaID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// A batch may have partially applied; the client recovers by
		// re-submitting the same list.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save media"})
		return
	}

	revalidate.Path("/dashboard/projects")

	c.JSON(http.StatusOK, media)
}
