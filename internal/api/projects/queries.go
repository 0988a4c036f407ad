package projects

import (
	"portfolio-app/internal/domain/projects"

	"gorm.io/gorm"
)

func userProjectsQuery(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&projects.Project{}).Where("user_id = ?", userID)
}

func publishedProjectsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&projects.Project{}).Where("status = ?", projects.StatusPublished)
}
