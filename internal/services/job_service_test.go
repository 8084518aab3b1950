package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

func TestJobSearchUsesDefaultLimit(t *testing.T) {
	store := newStubStore()
	svc := NewJobService(store)

	_, err := svc.Search(t.Context(), dtos.JobSearchQuery{})
	require.NoError(t, err)

	assert.Equal(t, models.CollectionJob, store.lastCollection)
	assert.EqualValues(t, DefaultJobLimit, store.lastLimit)
	assert.Equal(t, bson.M{"is_active": true}, store.lastFilter)
}

func TestJobSearchPassesFiltersThrough(t *testing.T) {
	store := newStubStore()
	svc := NewJobService(store)

	_, err := svc.Search(t.Context(), dtos.JobSearchQuery{
		Q:        "engineer",
		Location: "Remote",
		Tag:      "go",
		Limit:    5,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 5, store.lastLimit)
	assert.Equal(t, BuildJobFilter("engineer", "Remote", "go"), store.lastFilter)
}

func TestJobCreateDefaultsActiveAndPostedAt(t *testing.T) {
	store := newStubStore()
	svc := NewJobService(store)

	before := time.Now().UTC()
	id, err := svc.Create(t.Context(), dtos.JobCreateRequest{
		Title:          "Backend Engineer",
		CompanyName:    "Acme",
		Location:       "Berlin",
		EmploymentType: models.EmploymentFullTime,
		Description:    "Build things",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, store.inserted, 1)
	job := store.inserted[0].(models.Job)
	assert.Equal(t, models.CollectionJob, store.lastCollection)
	assert.True(t, job.IsActive)
	assert.False(t, job.PostedAt.Before(before))
	assert.NotNil(t, job.Requirements)
	assert.NotNil(t, job.Tags)
}

func TestJobCreateHonorsExplicitFields(t *testing.T) {
	store := newStubStore()
	svc := NewJobService(store)

	inactive := false
	posted := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(t.Context(), dtos.JobCreateRequest{
		Title:          "Archivist",
		CompanyName:    "Acme",
		Location:       "Remote",
		EmploymentType: models.EmploymentContract,
		Description:    "Old posting",
		IsActive:       &inactive,
		PostedAt:       &posted,
		Tags:           []string{"archive"},
	})
	require.NoError(t, err)

	job := store.inserted[0].(models.Job)
	assert.False(t, job.IsActive)
	assert.Equal(t, posted, job.PostedAt)
	assert.Equal(t, []string{"archive"}, job.Tags)
}
