package blog

import (
	"regexp"
	"strings"
	"time"

	"portfolio-app/internal/domain/blog"
)

// publishedAtOnTransition decides the published_at value for an edit.
// It is set the first time a post transitions to published and never
// cleared or moved afterwards, including on unpublish.
func publishedAtOnTransition(current *time.Time, newStatus blog.Status, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	if newStatus == blog.StatusPublished {
		return &now
	}
	return nil
}

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// makeSlug generates a URL-safe slug from a post title.
// Example: "Hello, World!" -> "hello-world"
func makeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "post"
	}
	return base
}
