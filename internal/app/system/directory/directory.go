// Package directory implements the file directory service: creating file
// and folder records, enforcing the folder-hierarchy rules, listing an
// owner's records page by page, and flipping per-file visibility.
package directory

import (
	"context"
	"encoding/base64"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/accessctl"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/fault"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FileStore is the metadata-store surface the directory service needs.
// Lookups return (nil, nil) when no record matches.
type FileStore interface {
	Insert(ctx context.Context, f models.File) (*models.File, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error)
	GetOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.File, error)
	ListByParent(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]models.File, error)
	SetVisibility(ctx context.Context, id primitive.ObjectID, isPublic bool) (*models.File, error)
}

// BlobWriter writes file bytes into the blob store.
type BlobWriter interface {
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Service validates and executes metadata operations for authenticated
// requests.
type Service struct {
	auth  *accessctl.Service
	files FileStore
	blobs BlobWriter
	log   *zap.Logger
}

// New creates a directory service.
func New(auth *accessctl.Service, files FileStore, blobs BlobWriter, logger *zap.Logger) *Service {
	return &Service{auth: auth, files: files, blobs: blobs, log: logger}
}

// CreateInput is the payload for Create. ParentID and Data are wire-level
// strings: ParentID is "0"/empty for root or a hex record ID, Data is the
// base64-encoded content required for non-folder types.
type CreateInput struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// Create validates input, checks the parent folder, and inserts the record.
// For non-folder types the decoded bytes are written to the blob store
// before the metadata insert, so a failure between the two leaves at worst
// an orphan blob, never a record pointing at missing bytes. On insert
// failure the written blob is deleted best-effort.
func (s *Service) Create(ctx context.Context, token string, in CreateInput) (*models.File, error) {
	userID, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, fault.ErrMissingName
	}
	if !models.ValidType(in.Type) {
		return nil, fault.ErrMissingType
	}
	if in.Data == "" && in.Type != models.TypeFolder {
		return nil, fault.ErrMissingData
	}

	parentID, err := s.checkParent(ctx, in.ParentID)
	if err != nil {
		return nil, err
	}

	rec := models.File{
		UserID:   userID,
		Name:     in.Name,
		Type:     in.Type,
		IsPublic: in.IsPublic,
		ParentID: parentID,
	}

	if in.Type == models.TypeFolder {
		created, err := s.files.Insert(ctx, rec)
		if err != nil {
			return nil, fault.Store(err)
		}
		return created, nil
	}

	content, err := base64.StdEncoding.DecodeString(in.Data)
	if err != nil {
		return nil, fault.ErrMissingData
	}

	key := uuid.NewString()
	if err := s.blobs.Put(ctx, key, content); err != nil {
		s.log.Error("blob write failed", zap.String("key", key), zap.Error(err))
		return nil, fault.Store(err)
	}

	rec.LocalPath = key
	created, err := s.files.Insert(ctx, rec)
	if err != nil {
		// The blob was written but the record never committed; remove the
		// orphan so the namespace does not accumulate unreachable bytes.
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.log.Warn("orphan blob cleanup failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fault.Store(err)
	}

	s.log.Debug("file created",
		zap.String("id", created.ID.Hex()),
		zap.String("type", created.Type),
		zap.String("user_id", userID.Hex()),
	)
	return created, nil
}

// Get returns the requester's record with the given hex ID. Ownership is
// folded into the lookup filter, so records owned by others read as absent.
func (s *Service) Get(ctx context.Context, token, fileID string) (*models.File, error) {
	userID, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, fault.ErrNotFound
	}

	f, err := s.files.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, fault.Store(err)
	}
	if f == nil {
		return nil, fault.ErrNotFound
	}
	return f, nil
}

// List returns page (0-based) of the requester's records under parentID
// ("0" or empty for root). A parentID that is not a valid record ID matches
// nothing and yields an empty page.
func (s *Service) List(ctx context.Context, token, parentID string, page int64) ([]models.File, error) {
	userID, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	var parent *primitive.ObjectID
	if parentID != "" && parentID != models.RootParentID {
		id, err := primitive.ObjectIDFromHex(parentID)
		if err != nil {
			return []models.File{}, nil
		}
		parent = &id
	}

	files, err := s.files.ListByParent(ctx, userID, parent, page)
	if err != nil {
		return nil, fault.Store(err)
	}
	return files, nil
}

// SetVisibility flips the is_public flag on a record the requester owns and
// returns the updated record. Publish and unpublish are this one operation
// parameterized by isPublic.
func (s *Service) SetVisibility(ctx context.Context, token, fileID string, isPublic bool) (*models.File, error) {
	userID, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, fault.ErrNotFound
	}

	// Ownership check first; the update itself is keyed by ID alone.
	owned, err := s.files.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, fault.Store(err)
	}
	if owned == nil {
		return nil, fault.ErrNotFound
	}

	updated, err := s.files.SetVisibility(ctx, id, isPublic)
	if err != nil {
		return nil, fault.Store(err)
	}
	if updated == nil {
		return nil, fault.ErrNotFound
	}
	return updated, nil
}

// checkParent resolves the wire-level parent ID. Root sentinels return
// (nil, nil); anything else must name an existing folder record.
func (s *Service) checkParent(ctx context.Context, parentID string) (*primitive.ObjectID, error) {
	if parentID == "" || parentID == models.RootParentID {
		return nil, nil
	}

	id, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return nil, fault.ErrParentNotFound
	}

	parent, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, fault.Store(err)
	}
	if parent == nil {
		return nil, fault.ErrParentNotFound
	}
	if !parent.IsFolder() {
		return nil, fault.ErrParentNotFolder
	}
	return &id, nil
}
