package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

const DefaultCompanyLimit = 100

type CompanyService struct {
	Store Store
}

func NewCompanyService(store Store) *CompanyService {
	return &CompanyService{Store: store}
}

func (s *CompanyService) Create(ctx context.Context, req dtos.CompanyCreateRequest) (string, error) {
	company := models.Company{
		Name:        req.Name,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
		Description: req.Description,
	}
	return s.Store.Insert(ctx, models.CollectionCompany, company)
}

// List returns companies unfiltered, in storage order.
func (s *CompanyService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = DefaultCompanyLimit
	}
	return s.Store.Find(ctx, models.CollectionCompany, bson.M{}, limit)
}
