package router

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// uniqueIndexes lists the unique constraints each collection relies on. The
// handler-level duplicate checks are only a friendlier error path; these
// indexes are what actually prevents duplicate accounts, double applications
// and parallel connection/follow edges.
func uniqueIndexes() map[string][]mongo.IndexModel {
	unique := options.Index().SetUnique(true)
	return map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"applications": {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "opportunity", Value: 1}}, Options: unique},
		},
		"connections": {
			{Keys: bson.D{{Key: "requester", Value: 1}, {Key: "recipient", Value: 1}}, Options: unique},
		},
		"follows": {
			{Keys: bson.D{{Key: "follower", Value: 1}, {Key: "following", Value: 1}}, Options: unique},
		},
	}
}

// ensureIndexes creates the unique indexes; CreateMany is idempotent for
// indexes that already exist
func ensureIndexes(ctx context.Context, db *mongo.Database) {
	for collection, indexes := range uniqueIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			log.Printf("Index creation on %s failed: %v", collection, err)
		}
	}
}
