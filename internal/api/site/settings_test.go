package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestSettingsPatch_OnlySetFields(t *testing.T) {
	req := UpdateSettingsRequest{
		EnableBlog: boolPtr(true),
		MetaTitle:  strPtr("My Portfolio"),
	}

	patch := req.patch()

	assert.Equal(t, map[string]interface{}{
		"enable_blog": true,
		"meta_title":  "My Portfolio",
	}, patch)
}

func TestSettingsPatch_EmptyRequest(t *testing.T) {
	assert.Empty(t, UpdateSettingsRequest{}.patch())
}

func TestSettingsPatch_FalseAndEmptyAreOverwrites(t *testing.T) {
	// A false bool or empty string is a real overwrite, not an
	// omission; only nil pointers are skipped.
	req := UpdateSettingsRequest{
		ShowViewCounts: boolPtr(false),
		ResumeURL:      strPtr(""),
	}

	patch := req.patch()

	assert.Equal(t, false, patch["show_view_counts"])
	assert.Equal(t, "", patch["resume_url"])
	assert.NotContains(t, patch, "enable_blog")
}

func TestSettingsPatch_Idempotent(t *testing.T) {
	req := UpdateSettingsRequest{
		ShowFeaturedFirst: boolPtr(true),
		MetaDescription:   strPtr("desc"),
	}

	assert.Equal(t, req.patch(), req.patch())
}
