package projects

import (
	"errors"
	"fmt"

	"portfolio-app/internal/domain/projects"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateMediaID = errors.New("duplicate media id in submitted list")
	ErrForeignMediaID   = errors.New("media id does not belong to this project")
)

// mediaPlan is the computed write set for one reconciliation: rows to
// upsert (submitted with an id), rows to insert (submitted without),
// and persisted ids missing from the submission.
type mediaPlan struct {
	updates  []projects.ProjectMedia
	inserts  []projects.ProjectMedia
	toDelete []string
}

// planMediaReconcile validates the submitted list against the persisted
// id set and assigns final positions. Position is the index in the
// submitted list, update and insert rows alike, so the collection ends
// up dense (0..N-1) in exactly the submitted order. Validation failures
// reject the whole submission before any write.
func planMediaReconcile(projectID string, persistedIDs []string, submitted []MediaInput) (mediaPlan, error) {
	persisted := make(map[string]bool, len(persistedIDs))
	for _, id := range persistedIDs {
		persisted[id] = true
	}

	var plan mediaPlan
	seen := make(map[string]bool, len(submitted))
	kept := make(map[string]bool, len(submitted))

	for i, item := range submitted {
		if item.ID != nil && *item.ID != "" {
			id := *item.ID
			if seen[id] {
				return mediaPlan{}, fmt.Errorf("%w: %s", ErrDuplicateMediaID, id)
			}
			seen[id] = true
			if !persisted[id] {
				return mediaPlan{}, fmt.Errorf("%w: %s", ErrForeignMediaID, id)
			}
			kept[id] = true
			plan.updates = append(plan.updates, projects.ProjectMedia{
				ID:        id,
				ProjectID: projectID,
				Type:      item.Type,
				URL:       item.URL,
				Position:  i,
			})
		} else {
			plan.inserts = append(plan.inserts, projects.ProjectMedia{
				ProjectID: projectID,
				Type:      item.Type,
				URL:       item.URL,
				Position:  i,
			})
		}
	}

	for _, id := range persistedIDs {
		if !kept[id] {
			plan.toDelete = append(plan.toDelete, id)
		}
	}

	return plan, nil
}

// applyMediaPlan issues the three batches in the fixed order
// update -> insert -> delete, so a reader mid-reconciliation never sees
// a new row collide on position with an old row that is about to go.
// The batches are intentionally not wrapped in a transaction: a partial
// failure leaves whatever the completed batches wrote, and re-submitting
// the same list is idempotent and repairs it.
func applyMediaPlan(db *gorm.DB, projectID string, plan mediaPlan) error {
	if len(plan.updates) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "url", "position"}),
		}).Create(&plan.updates).Error
		if err != nil {
			return fmt.Errorf("update media batch: %w", err)
		}
	}

	if len(plan.inserts) > 0 {
		if err := db.Create(&plan.inserts).Error; err != nil {
			return fmt.Errorf("insert media batch: %w", err)
		}
	}

	if len(plan.toDelete) > 0 {
		err := db.Where("project_id = ? AND id IN ?", projectID, plan.toDelete).
			Delete(&projects.ProjectMedia{}).Error
		if err != nil {
			return fmt.Errorf("delete media batch: %w", err)
		}
	}

	return nil
}

// reconcileMedia makes the stored media list of a project match the
// submitted one and returns the authoritative collection read back in
// position order.
func reconcileMedia(db *gorm.DB, projectID string, submitted []MediaInput) ([]projects.ProjectMedia, error) {
	var persistedIDs []string
	err := db.Model(&projects.ProjectMedia{}).
		Where("project_id = ?", projectID).
		Pluck("id", &persistedIDs).Error
	if err != nil {
		return nil, err
	}

	plan, err := planMediaReconcile(projectID, persistedIDs, submitted)
	if err != nil {
		return nil, err
	}

	if err := applyMediaPlan(db, projectID, plan); err != nil {
		return nil, err
	}

	var media []projects.ProjectMedia
	err = db.Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}
