// Package file provides storage for file metadata in the files collection.
package file

import (
	"context"
	"errors"
	"time"

	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 20

// Store provides access to the files collection.
//
// Lookup methods return (nil, nil) when no document matches, so callers can
// distinguish "absent" from a store failure without importing mongo.
type Store struct {
	c *mongo.Collection
}

// New creates a new file store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("files"),
	}
}

// Insert inserts a new file record and returns it with its assigned ID.
func (s *Store) Insert(ctx context.Context, f models.File) (*models.File, error) {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByID retrieves a file record by ID alone, regardless of owner.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// GetOwned retrieves a file record by ID and owner. Ownership is part of
// the filter, so a record owned by someone else reads as absent.
func (s *Store) GetOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.File, error) {
	return s.findOne(ctx, bson.M{"_id": id, "user_id": userID})
}

// ListByParent returns one page of an owner's records under the given
// parent (nil = root). Pages are PageSize long and sorted by _id ascending,
// which is creation order for ObjectIDs.
func (s *Store) ListByParent(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]models.File, error) {
	if page < 0 {
		page = 0
	}

	filter := bson.M{"user_id": userID, "parent_id": parentID}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(page * PageSize).
		SetLimit(PageSize)

	cursor, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	files := []models.File{}
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// SetVisibility updates the is_public flag and returns the post-update
// record. Returns (nil, nil) if the record does not exist.
func (s *Store) SetVisibility(ctx context.Context, id primitive.ObjectID, isPublic bool) (*models.File, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var f models.File
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_public": isPublic}},
		opts,
	).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Count returns the total number of file records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (*models.File, error) {
	var f models.File
	err := s.c.FindOne(ctx, filter).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
