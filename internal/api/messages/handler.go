package messages

import (
	"errors"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/messages"
	"portfolio-app/internal/domain/profiles"
	"portfolio-app/internal/infra/revalidate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject"`
	Message string  `json:"message" binding:"required"`
}

type UpdateStatusRequest struct {
	Status messages.Status `json:"status" binding:"required"`
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
// POST /contact (public, including anonymous)
// Messages are addressed to the portfolio owner.
// ------------------------------
func Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var owner profiles.Profile
	err := database.DB.
		Where("is_admin = ?", true).
		Order("created_at ASC").
		First(&owner).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Contact form is unavailable"})
		return
	}

	msg := messages.Message{
		UserID:  owner.ID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  messages.StatusUnread,
	}

	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	revalidate.Path("/dashboard/messages")

	c.JSON(http.StatusCreated, msg)
}

// ------------------------------
// GET /dashboard/messages
// ------------------------------
func ListOwn(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []messages.Message
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// PUT /dashboard/messages/:id/status
// ------------------------------
func UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var msg messages.Message
	if err := database.DB.First(&msg, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load message"})
		return
	}

	err := database.DB.Model(&msg).Update("status", req.Status).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}

	revalidate.Path("/dashboard/messages")

	c.JSON(http.StatusOK, msg)
}

// ------------------------------
// DELETE /dashboard/messages/:id
// ------------------------------
func Delete(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&messages.Message{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	revalidate.Path("/dashboard/messages")

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
