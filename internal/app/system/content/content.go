// Package content resolves an authorized file record to its bytes and
// content type.
//
// Resolution is a fixed-order decision tree: record existence, then
// owner-or-public visibility, then type (folders carry no content), then
// blob presence. The order keeps error precedence deterministic and avoids
// revealing anything about private files before the visibility check.
package content

import (
	"context"
	"mime"
	"path/filepath"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/accessctl"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/fault"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultContentType is used when the record name's extension is not a
// recognized MIME type.
const DefaultContentType = "application/octet-stream"

// FileGetter fetches records by ID alone; ownership is not filtered here
// because visibility is decided by the access control service afterwards.
// Returns (nil, nil) when no record matches.
type FileGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error)
}

// BlobReader reads file bytes from the blob store.
type BlobReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Resolver maps file IDs to servable content.
type Resolver struct {
	auth  *accessctl.Service
	files FileGetter
	blobs BlobReader
	log   *zap.Logger
}

// New creates a content resolver.
func New(auth *accessctl.Service, files FileGetter, blobs BlobReader, logger *zap.Logger) *Resolver {
	return &Resolver{auth: auth, files: files, blobs: blobs, log: logger}
}

// Resolve returns the bytes and content type for fileID, if the bearer of
// token may retrieve them. token may be empty; public files resolve without
// one. An unreadable or missing blob reports fault.ErrNotFound, the same as
// a missing record.
func (r *Resolver) Resolve(ctx context.Context, fileID, token string) ([]byte, string, error) {
	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, "", fault.ErrNotFound
	}

	f, err := r.files.GetByID(ctx, id)
	if err != nil {
		return nil, "", fault.Store(err)
	}
	if f == nil {
		return nil, "", fault.ErrNotFound
	}

	if err := r.auth.AuthorizeOwnerOrPublic(ctx, f, token); err != nil {
		return nil, "", err
	}

	if f.IsFolder() {
		return nil, "", fault.ErrFolderNoContent
	}

	if f.LocalPath == "" {
		return nil, "", fault.ErrNotFound
	}
	data, err := r.blobs.Get(ctx, f.LocalPath)
	if err != nil {
		r.log.Warn("blob read failed",
			zap.String("id", f.ID.Hex()),
			zap.String("key", f.LocalPath),
			zap.Error(err),
		)
		return nil, "", fault.ErrNotFound
	}

	return data, TypeByName(f.Name), nil
}

// TypeByName returns the MIME type for a file name based on its extension,
// falling back to DefaultContentType when unrecognized. Blobs are stored
// without extensions, so the display name is the only source of type
// information.
func TypeByName(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return DefaultContentType
}
