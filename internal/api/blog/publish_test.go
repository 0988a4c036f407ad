package blog

import (
	"testing"
	"time"

	"portfolio-app/internal/domain/blog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishedAt_SetOnFirstPublish(t *testing.T) {
	now := time.Now()

	at := publishedAtOnTransition(nil, blog.StatusPublished, now)
	require.NotNil(t, at)
	assert.Equal(t, now, *at)
}

func TestPublishedAt_NotSetForDraft(t *testing.T) {
	assert.Nil(t, publishedAtOnTransition(nil, blog.StatusDraft, time.Now()))
}

func TestPublishedAt_NeverMovedOnRepublish(t *testing.T) {
	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	at := publishedAtOnTransition(&first, blog.StatusPublished, time.Now())
	require.NotNil(t, at)
	assert.Equal(t, first, *at)
}

func TestPublishedAt_NeverClearedOnUnpublish(t *testing.T) {
	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	at := publishedAtOnTransition(&first, blog.StatusDraft, time.Now())
	require.NotNil(t, at)
	assert.Equal(t, first, *at)
}

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"???", "post"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, makeSlug(tt.title), "title %q", tt.title)
	}
}
