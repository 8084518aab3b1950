package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

func TestCompanyCreate(t *testing.T) {
	store := newStubStore()
	svc := NewCompanyService(store)

	id, err := svc.Create(t.Context(), dtos.CompanyCreateRequest{Name: "Acme", Website: "https://acme.test"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	company := store.inserted[0].(models.Company)
	assert.Equal(t, models.CollectionCompany, store.lastCollection)
	assert.Equal(t, "Acme", company.Name)
}

func TestCompanyListIsUnfiltered(t *testing.T) {
	store := newStubStore()
	svc := NewCompanyService(store)

	_, err := svc.List(t.Context(), 0)
	require.NoError(t, err)

	assert.Equal(t, bson.M{}, store.lastFilter)
	assert.EqualValues(t, DefaultCompanyLimit, store.lastLimit)
}
