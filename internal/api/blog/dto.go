package blog

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required"`
	Slug          *string  `json:"slug"`
	Excerpt       *string  `json:"excerpt"`
	Content       string   `json:"content" binding:"required"`
	CoverImageURL *string  `json:"cover_image_url"`
	Status        *string  `json:"status" binding:"omitempty,oneof=draft published"`
	Featured      *bool    `json:"featured"`
	Tags          []string `json:"tags"`
}

type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	CoverImageURL *string   `json:"cover_image_url"`
	Status        *string   `json:"status" binding:"omitempty,oneof=draft published"`
	Featured      *bool     `json:"featured"`
	Tags          *[]string `json:"tags"`
}
