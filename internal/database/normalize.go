package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Normalize converts a raw stored document into its response form: the
// store-assigned _id becomes its canonical hex string and every timestamp
// value is rendered as RFC 3339 text. Idempotent — values that are already
// strings pass through untouched, so a document normalized twice is
// unchanged.
func Normalize(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	for k, v := range doc {
		switch t := v.(type) {
		case primitive.ObjectID:
			doc[k] = t.Hex()
		case primitive.DateTime:
			doc[k] = t.Time().UTC().Format(time.RFC3339)
		case time.Time:
			doc[k] = t.UTC().Format(time.RFC3339)
		}
	}
	return doc
}
