package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the document-store contract the services depend on. Satisfied by
// *database.Mongo; tests swap in an in-memory stub.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, collection, id string) (bson.M, error)
	Configured() bool
}
