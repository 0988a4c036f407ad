package uploads

import (
	"net/http"
	"strings"

	"portfolio-app/internal/infra/objectstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Uploads above this size are rejected before touching the store.
const maxUploadBytes = 25 << 20 // 25 MiB

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

type Handler struct {
	store *objectstore.Storage
}

func NewHandler(store *objectstore.Storage) *Handler {
	return &Handler{store: store}
}

// ------------------------------
// POST /dashboard/uploads
// Accepts a multipart form with a single "file" field and returns the
// public URL of the stored object.
// ------------------------------
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedContentTypes[strings.ToLower(contentType)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	url, err := h.store.Upload(c.Request.Context(), fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
