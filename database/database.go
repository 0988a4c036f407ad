package database

import (
	"log"
	"os"

	"portfolio-app/internal/domain/blog"
	"portfolio-app/internal/domain/gallery"
	"portfolio-app/internal/domain/messages"
	"portfolio-app/internal/domain/profiles"
	"portfolio-app/internal/domain/projects"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid()
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// auth + identity
		&users.User{},
		&users.VerificationToken{},
		&profiles.Profile{},

		// content
		&projects.Project{},
		&projects.ProjectMedia{},
		&blog.Post{},
		&gallery.Item{},
		&messages.Message{},

		// site
		&site.Settings{},
		&site.SocialLink{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	if err := createFunctions(DB); err != nil {
		log.Fatal("Failed to create database functions:", err)
	}

	// The settings table must always hold exactly one row. Seeding it
	// here keeps every writer on the update path (no insert fallback).
	if err := DB.FirstOrCreate(&site.Settings{}, site.Settings{ID: true}).Error; err != nil {
		log.Fatal("Failed to seed site settings:", err)
	}

	log.Println("Connected and migrated successfully")
}

// createFunctions installs the SQL functions the core invokes by name:
// atomic view counters, the admin check, admin promotion, and the
// privileged settings update. Counters increment server-side so
// concurrent viewers never race a read-modify-write.
func createFunctions(db *gorm.DB) error {
	stmts := []string{
		`CREATE OR REPLACE FUNCTION is_admin(user_id uuid) RETURNS boolean AS $$
			SELECT COALESCE((SELECT p.is_admin FROM profiles p WHERE p.id = user_id), false);
		$$ LANGUAGE sql STABLE;`,

		`CREATE OR REPLACE FUNCTION make_admin(target_user_id uuid) RETURNS void AS $$
			UPDATE profiles SET is_admin = true, updated_at = now() WHERE id = target_user_id;
		$$ LANGUAGE sql;`,

		`CREATE OR REPLACE FUNCTION increment_view_count(project_id uuid) RETURNS void AS $$
			UPDATE projects SET view_count = view_count + 1 WHERE id = project_id;
		$$ LANGUAGE sql;`,

		`CREATE OR REPLACE FUNCTION increment_blog_view_count(post_id uuid) RETURNS void AS $$
			UPDATE blog_posts SET view_count = view_count + 1 WHERE id = post_id;
		$$ LANGUAGE sql;`,

		// Field-level overwrite of the singleton row. Keys absent from
		// the patch keep their current value; the function never
		// inserts, so a missing row surfaces as an empty result.
		`CREATE OR REPLACE FUNCTION update_site_settings(patch jsonb) RETURNS SETOF site_settings AS $$
			UPDATE site_settings SET
				show_view_counts    = COALESCE((patch->>'show_view_counts')::boolean, show_view_counts),
				show_featured_first = COALESCE((patch->>'show_featured_first')::boolean, show_featured_first),
				enable_blog         = COALESCE((patch->>'enable_blog')::boolean, enable_blog),
				enable_gallery      = COALESCE((patch->>'enable_gallery')::boolean, enable_gallery),
				meta_title          = CASE WHEN patch ? 'meta_title' THEN patch->>'meta_title' ELSE meta_title END,
				meta_description    = CASE WHEN patch ? 'meta_description' THEN patch->>'meta_description' ELSE meta_description END,
				resume_url          = CASE WHEN patch ? 'resume_url' THEN patch->>'resume_url' ELSE resume_url END,
				updated_at          = now()
			WHERE id = true
			RETURNING *;
		$$ LANGUAGE sql SECURITY DEFINER;`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
