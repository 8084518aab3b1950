package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

const DefaultApplicationLimit = 100

type ApplicationService struct {
	Store Store
}

func NewApplicationService(store Store) *ApplicationService {
	return &ApplicationService{Store: store}
}

// Submit validates that the referenced job exists, then inserts the
// application. The check and the insert are not serialized against other
// requests; a job deleted in between is an accepted race. A missing job
// surfaces as database.ErrNotFound, a malformed job_id as
// database.ErrInvalidID — in both cases nothing is written.
func (s *ApplicationService) Submit(ctx context.Context, req dtos.ApplicationCreateRequest) (string, error) {
	if _, err := s.Store.FindByID(ctx, models.CollectionJob, req.JobID); err != nil {
		return "", err
	}

	app := models.Application{
		JobID:       req.JobID,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
		Name:        req.Name,
		Email:       req.Email,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		Status:      req.Status,
	}
	if app.Status == "" {
		app.Status = models.StatusSubmitted
	}
	return s.Store.Insert(ctx, models.CollectionApplication, app)
}

// List returns applications, optionally restricted to one job by exact
// job_id equality.
func (s *ApplicationService) List(ctx context.Context, query dtos.ApplicationListQuery) ([]bson.M, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultApplicationLimit
	}
	filter := bson.M{}
	if query.JobID != "" {
		filter["job_id"] = query.JobID
	}
	return s.Store.Find(ctx, models.CollectionApplication, filter, limit)
}
