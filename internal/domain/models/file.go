package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File type values stored in the "type" field.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// ValidType returns true if t is a recognized file type.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// RootParentID is the wire representation of "no parent folder".
const RootParentID = "0"

// File represents a file, image, or folder owned by a user.
//
// ParentID is nil for records at the root of the hierarchy; a non-nil
// ParentID always references a record whose Type is "folder" (checked at
// creation time). LocalPath is the key of the record's bytes in the blob
// store and is empty for folders. Only IsPublic changes after creation.
type File struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    primitive.ObjectID  `bson:"user_id"`
	Name      string              `bson:"name"`
	Type      string              `bson:"type"`
	IsPublic  bool                `bson:"is_public"`
	ParentID  *primitive.ObjectID `bson:"parent_id,omitempty"` // nil = root
	LocalPath string              `bson:"local_path,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
}

// IsFolder returns true if the record is a folder.
func (f *File) IsFolder() bool {
	return f.Type == TypeFolder
}

// IsInRoot returns true if the record has no parent folder.
func (f *File) IsInRoot() bool {
	return f.ParentID == nil
}

// MarshalJSON serializes the record for API responses. LocalPath is a
// storage-internal detail and is never exposed; a nil ParentID serializes
// as the root sentinel "0".
func (f File) MarshalJSON() ([]byte, error) {
	parent := RootParentID
	if f.ParentID != nil {
		parent = f.ParentID.Hex()
	}
	return json.Marshal(struct {
		ID        string    `json:"id"`
		UserID    string    `json:"userId"`
		Name      string    `json:"name"`
		Type      string    `json:"type"`
		IsPublic  bool      `json:"isPublic"`
		ParentID  string    `json:"parentId"`
		CreatedAt time.Time `json:"createdAt"`
	}{
		ID:        f.ID.Hex(),
		UserID:    f.UserID.Hex(),
		Name:      f.Name,
		Type:      f.Type,
		IsPublic:  f.IsPublic,
		ParentID:  parent,
		CreatedAt: f.CreatedAt,
	})
}
