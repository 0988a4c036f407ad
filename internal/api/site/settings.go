package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-app/database"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/infra/revalidate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrSettingsMissing means the singleton row does not exist. The writer
// never repairs that by inserting; a second row must never appear.
var ErrSettingsMissing = errors.New("site settings row is missing")

// ------------------------------
// GET /settings (public)
// ------------------------------
func GetSettings(c *gin.Context) {
	var settings site.Settings
	if err := database.DB.First(&settings, "id = ?", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ------------------------------
// PUT /dashboard/settings
// Reached only through the access gate, so the caller is known to be an
// admin; no second check here.
// ------------------------------
func UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := applySettings(database.DB, req.patch())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	revalidate.Path("/dashboard/settings")
	revalidate.Path("/")

	c.JSON(http.StatusOK, settings)
}

// applySettings writes a partial patch to the singleton row. Primary
// path is the privileged update_site_settings procedure; if that call
// fails for any reason (absent in this deployment, revoked, transient)
// the writer falls back to a direct conditional update. Only a failure
// of both paths is an error.
func applySettings(db *gorm.DB, patch map[string]interface{}) (*site.Settings, error) {
	if len(patch) == 0 {
		var current site.Settings
		if err := db.First(&current, "id = ?", true).Error; err != nil {
			return nil, err
		}
		return &current, nil
	}

	settings, err := applyViaProcedure(db, patch)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, ErrSettingsMissing) {
		return nil, err
	}
	log.Warn().Err(err).Msg("update_site_settings procedure failed, using direct update")

	return applyDirect(db, patch)
}

func applyViaProcedure(db *gorm.DB, patch map[string]interface{}) (*site.Settings, error) {
	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}

	var settings site.Settings
	res := db.Raw("SELECT * FROM update_site_settings(?::jsonb)", string(payload)).Scan(&settings)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrSettingsMissing
	}
	return &settings, nil
}

func applyDirect(db *gorm.DB, patch map[string]interface{}) (*site.Settings, error) {
	updates := make(map[string]interface{}, len(patch)+1)
	for k, v := range patch {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	res := db.Model(&site.Settings{}).Where("id = ?", true).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrSettingsMissing
	}

	var settings site.Settings
	if err := db.First(&settings, "id = ?", true).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
