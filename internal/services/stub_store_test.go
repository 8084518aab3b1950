package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobportal/internal/database"
)

// stubStore is an in-memory Store for service tests. FindByID mirrors the
// gateway's id semantics: malformed hex is ErrInvalidID, well-formed but
// unknown is ErrNotFound.
type stubStore struct {
	configured bool
	docs       map[string][]bson.M
	byID       map[string]bson.M

	inserted       []any
	lastCollection string
	lastFilter     bson.M
	lastLimit      int64
}

func newStubStore() *stubStore {
	return &stubStore{
		configured: true,
		docs:       map[string][]bson.M{},
		byID:       map[string]bson.M{},
	}
}

func (s *stubStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	if !s.configured {
		return "", database.ErrNotConfigured
	}
	s.lastCollection = collection
	s.inserted = append(s.inserted, doc)
	return primitive.NewObjectID().Hex(), nil
}

func (s *stubStore) Find(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.configured {
		return nil, database.ErrNotConfigured
	}
	s.lastCollection = collection
	s.lastFilter = filter
	s.lastLimit = limit
	docs := s.docs[collection]
	if docs == nil {
		docs = []bson.M{}
	}
	if int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (s *stubStore) FindByID(_ context.Context, collection, id string) (bson.M, error) {
	if !s.configured {
		return nil, database.ErrNotConfigured
	}
	s.lastCollection = collection
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, database.ErrInvalidID
	}
	doc, ok := s.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return doc, nil
}

func (s *stubStore) Configured() bool {
	return s.configured
}
