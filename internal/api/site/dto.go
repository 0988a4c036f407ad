package site

// UpdateSettingsRequest is a partial patch of the settings singleton.
// Nil fields are left untouched; set fields overwrite (field-level
// overwrite, not a delta), so applying the same patch twice yields the
// same row.
type UpdateSettingsRequest struct {
	ShowViewCounts    *bool   `json:"show_view_counts"`
	ShowFeaturedFirst *bool   `json:"show_featured_first"`
	EnableBlog        *bool   `json:"enable_blog"`
	EnableGallery     *bool   `json:"enable_gallery"`
	MetaTitle         *string `json:"meta_title"`
	MetaDescription   *string `json:"meta_description"`
	ResumeURL         *string `json:"resume_url"`
}

func (r UpdateSettingsRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.ShowViewCounts != nil {
		patch["show_view_counts"] = *r.ShowViewCounts
	}
	if r.ShowFeaturedFirst != nil {
		patch["show_featured_first"] = *r.ShowFeaturedFirst
	}
	if r.EnableBlog != nil {
		patch["enable_blog"] = *r.EnableBlog
	}
	if r.EnableGallery != nil {
		patch["enable_gallery"] = *r.EnableGallery
	}
	if r.MetaTitle != nil {
		patch["meta_title"] = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		patch["meta_description"] = *r.MetaDescription
	}
	if r.ResumeURL != nil {
		patch["resume_url"] = *r.ResumeURL
	}
	return patch
}

type SocialLinkInput struct {
	Platform string  `json:"platform" binding:"required"`
	Label    *string `json:"label"`
	URL      string  `json:"url" binding:"required"`
}
