package projects

import (
	"testing"

	"portfolio-app/internal/domain/projects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectID = "6a7e2b1c-0000-0000-0000-000000000001"

func strPtr(s string) *string { return &s }

func TestPlanMediaReconcile_PositionsAreDense(t *testing.T) {
	persisted := []string{"a", "b"}
	submitted := []MediaInput{
		{ID: strPtr("b"), Type: projects.MediaImage, URL: "b.png"},
		{Type: projects.MediaVideo, URL: "new.mp4"},
		{ID: strPtr("a"), Type: projects.MediaImage, URL: "a.png"},
	}

	plan, err := planMediaReconcile(testProjectID, persisted, submitted)
	require.NoError(t, err)

	// Position equals the index in the submitted list, for updates and
	// inserts alike.
	positions := map[int]bool{}
	for _, m := range plan.updates {
		positions[m.Position] = true
	}
	for _, m := range plan.inserts {
		positions[m.Position] = true
	}
	require.Len(t, positions, len(submitted))
	for i := range submitted {
		assert.True(t, positions[i], "position %d missing", i)
	}

	require.Len(t, plan.updates, 2)
	assert.Equal(t, "b", plan.updates[0].ID)
	assert.Equal(t, 0, plan.updates[0].Position)
	assert.Equal(t, "a", plan.updates[1].ID)
	assert.Equal(t, 2, plan.updates[1].Position)

	require.Len(t, plan.inserts, 1)
	assert.Empty(t, plan.inserts[0].ID)
	assert.Equal(t, 1, plan.inserts[0].Position)
	assert.Equal(t, testProjectID, plan.inserts[0].ProjectID)

	assert.Empty(t, plan.toDelete)
}

func TestPlanMediaReconcile_Idempotent(t *testing.T) {
	persisted := []string{"a", "b"}
	submitted := []MediaInput{
		{ID: strPtr("a"), Type: projects.MediaImage, URL: "a.png"},
		{ID: strPtr("b"), Type: projects.MediaImage, URL: "b.png"},
	}

	first, err := planMediaReconcile(testProjectID, persisted, submitted)
	require.NoError(t, err)
	second, err := planMediaReconcile(testProjectID, persisted, submitted)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, first.inserts)
	assert.Empty(t, first.toDelete)
}

func TestPlanMediaReconcile_EmptySubmissionDeletesAll(t *testing.T) {
	persisted := []string{"a", "b", "c"}

	plan, err := planMediaReconcile(testProjectID, persisted, nil)
	require.NoError(t, err)

	assert.Empty(t, plan.updates)
	assert.Empty(t, plan.inserts)
	assert.ElementsMatch(t, persisted, plan.toDelete)
}

func TestPlanMediaReconcile_OmittedIDsAreDeleted(t *testing.T) {
	persisted := []string{"a", "b", "c"}
	submitted := []MediaInput{
		{ID: strPtr("b"), Type: projects.MediaImage, URL: "b.png"},
	}

	plan, err := planMediaReconcile(testProjectID, persisted, submitted)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "c"}, plan.toDelete)
}

func TestPlanMediaReconcile_RejectsForeignID(t *testing.T) {
	persisted := []string{"a"}
	submitted := []MediaInput{
		{ID: strPtr("not-mine"), Type: projects.MediaImage, URL: "x.png"},
	}

	plan, err := planMediaReconcile(testProjectID, persisted, submitted)
	require.ErrorIs(t, err, ErrForeignMediaID)
	assert.Equal(t, mediaPlan{}, plan, "rejection must not produce a partial plan")
}

func TestPlanMediaReconcile_RejectsDuplicateID(t *testing.T) {
	persisted := []string{"a"}
	submitted := []MediaInput{
		{ID: strPtr("a"), Type: projects.MediaImage, URL: "a.png"},
		{ID: strPtr("a"), Type: projects.MediaImage, URL: "a-again.png"},
	}

	plan, err := planMediaReconcile(testProjectID, persisted, submitted)
	require.ErrorIs(t, err, ErrDuplicateMediaID)
	assert.Equal(t, mediaPlan{}, plan)
}

// Fresh project: two new items get positions 0 and 1. Re-submitting the
// pair swapped (now with ids) swaps positions without inserting or
// deleting anything.
func TestPlanMediaReconcile_InsertThenSwap(t *testing.T) {
	plan, err := planMediaReconcile(testProjectID, nil, []MediaInput{
		{Type: projects.MediaImage, URL: "a.png"},
		{Type: projects.MediaImage, URL: "b.png"},
	})
	require.NoError(t, err)
	require.Len(t, plan.inserts, 2)
	assert.Equal(t, 0, plan.inserts[0].Position)
	assert.Equal(t, 1, plan.inserts[1].Position)
	assert.Empty(t, plan.updates)
	assert.Empty(t, plan.toDelete)

	// Pretend the store assigned ids row_a and row_b.
	plan, err = planMediaReconcile(testProjectID, []string{"row_a", "row_b"}, []MediaInput{
		{ID: strPtr("row_b"), Type: projects.MediaImage, URL: "b.png"},
		{ID: strPtr("row_a"), Type: projects.MediaImage, URL: "a.png"},
	})
	require.NoError(t, err)
	require.Len(t, plan.updates, 2)
	assert.Equal(t, "row_b", plan.updates[0].ID)
	assert.Equal(t, 0, plan.updates[0].Position)
	assert.Equal(t, "row_a", plan.updates[1].ID)
	assert.Equal(t, 1, plan.updates[1].Position)
	assert.Empty(t, plan.inserts)
	assert.Empty(t, plan.toDelete)
}
