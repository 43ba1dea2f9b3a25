// Package indexes creates the MongoDB indexes this service queries against.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll is called at startup. Each ensure* function is idempotent.
// Errors are aggregated so every problem is visible and startup can fail
// fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureFiles(ctx, db); err != nil {
		problems = append(problems, "files: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_email"),
		},
	})
	return err
}

func ensureFiles(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("files").Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Listing filter: owner + parent, paged by _id.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "parent_id", Value: 1}},
			Options: options.Index().SetName("idx_file_owner_parent"),
		},
	})
	return err
}
