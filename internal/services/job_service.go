package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

const DefaultJobLimit = 50

type JobService struct {
	Store Store
}

func NewJobService(store Store) *JobService {
	return &JobService{Store: store}
}

// Search lists active jobs matching the optional q/location/tag filters.
func (s *JobService) Search(ctx context.Context, query dtos.JobSearchQuery) ([]bson.M, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultJobLimit
	}
	filter := BuildJobFilter(query.Q, query.Location, query.Tag)
	return s.Store.Find(ctx, models.CollectionJob, filter, limit)
}

// Get fetches one job by id.
func (s *JobService) Get(ctx context.Context, id string) (bson.M, error) {
	return s.Store.FindByID(ctx, models.CollectionJob, id)
}

// Create inserts a job, defaulting is_active to true and posted_at to now
// when the caller omits them.
func (s *JobService) Create(ctx context.Context, req dtos.JobCreateRequest) (string, error) {
	job := models.Job{
		Title:          req.Title,
		CompanyID:      req.CompanyID,
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Tags:           req.Tags,
		IsActive:       true,
		PostedAt:       time.Now().UTC(),
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.PostedAt != nil {
		job.PostedAt = *req.PostedAt
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	return s.Store.Insert(ctx, models.CollectionJob, job)
}
