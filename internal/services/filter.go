package services

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildJobFilter translates the optional search parameters of GET /jobs into
// a single predicate over the job collection.
//
// The base clause is_active=true is always present and cannot be overridden:
// closed jobs are unreachable through the public listing. Each supplied
// parameter narrows the result (top-level clauses AND together):
//
//   - location: case-insensitive substring match on the location field
//   - tag: exact, case-sensitive element match against the tags array
//   - q: case-insensitive substring match against at least one of title,
//     company_name, description, or any tag ($or is the only disjunction)
//
// tag and q deliberately treat the tags field differently: the dedicated tag
// filter is exact while free-text search over tags is a substring match.
//
// User input is escaped with regexp.QuoteMeta before it becomes a $regex
// pattern, so metacharacters match literally instead of being interpreted.
func BuildJobFilter(q, location, tag string) bson.M {
	filter := bson.M{"is_active": true}

	if location != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(location), "$options": "i"}
	}
	if tag != "" {
		filter["tags"] = bson.M{"$in": bson.A{tag}}
	}
	if q != "" {
		pattern := regexp.QuoteMeta(q)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"company_name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"tags": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}
