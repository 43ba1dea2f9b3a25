package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	filestore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/file"
	userstore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/user"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/normalize"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FakeSessions is an in-memory stand-in for the Redis session store. It
// satisfies the token-resolver and session-store interfaces of the
// accessctl service and the auth feature.
type FakeSessions struct {
	mu     sync.Mutex
	Tokens map[string]string // token -> user ID hex
	Err    error             // forced error for every call
}

// NewFakeSessions creates an empty fake session store.
func NewFakeSessions() *FakeSessions {
	return &FakeSessions{Tokens: map[string]string{}}
}

func (s *FakeSessions) Create(ctx context.Context, token, userID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tokens[token] = userID
	return nil
}

func (s *FakeSessions) UserID(ctx context.Context, token string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Tokens[token], nil
}

func (s *FakeSessions) Delete(ctx context.Context, token string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Tokens, token)
	return nil
}

// FakeFileStore is an in-memory stand-in for the files collection. Listing
// mirrors the real store: owner+parent filter, _id ascending, pages of
// filestore.PageSize.
type FakeFileStore struct {
	mu        sync.Mutex
	Files     map[primitive.ObjectID]models.File
	InsertErr error
	LookupErr error
}

// NewFakeFileStore creates an empty fake file store.
func NewFakeFileStore() *FakeFileStore {
	return &FakeFileStore{Files: map[primitive.ObjectID]models.File{}}
}

func (s *FakeFileStore) Insert(ctx context.Context, f models.File) (*models.File, error) {
	if s.InsertErr != nil {
		return nil, s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	s.Files[f.ID] = f
	return &f, nil
}

func (s *FakeFileStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.Files[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (s *FakeFileStore) GetOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.File, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.Files[id]; ok && f.UserID == userID {
		return &f, nil
	}
	return nil, nil
}

func (s *FakeFileStore) ListByParent(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]models.File, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.File
	for _, f := range s.Files {
		if f.UserID != userID {
			continue
		}
		if parentID == nil {
			if f.ParentID != nil {
				continue
			}
		} else if f.ParentID == nil || *f.ParentID != *parentID {
			continue
		}
		matched = append(matched, f)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID.Hex() < matched[j].ID.Hex()
	})

	start := page * filestore.PageSize
	if start >= int64(len(matched)) {
		return []models.File{}, nil
	}
	end := start + filestore.PageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (s *FakeFileStore) SetVisibility(ctx context.Context, id primitive.ObjectID, isPublic bool) (*models.File, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.Files[id]
	if !ok {
		return nil, nil
	}
	f.IsPublic = isPublic
	s.Files[id] = f
	return &f, nil
}

// ErrBlobMissing is returned by FakeBlobs.Get for unknown keys.
var ErrBlobMissing = errors.New("blob not found")

// FakeBlobs is an in-memory stand-in for the blob store.
type FakeBlobs struct {
	mu     sync.Mutex
	Blobs  map[string][]byte
	PutErr error
	GetErr error
}

// NewFakeBlobs creates an empty fake blob store.
func NewFakeBlobs() *FakeBlobs {
	return &FakeBlobs{Blobs: map[string][]byte{}}
}

func (b *FakeBlobs) Put(ctx context.Context, key string, data []byte) error {
	if b.PutErr != nil {
		return b.PutErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Blobs[key] = append([]byte(nil), data...)
	return nil
}

func (b *FakeBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	if b.GetErr != nil {
		return nil, b.GetErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.Blobs[key]
	if !ok {
		return nil, ErrBlobMissing
	}
	return data, nil
}

func (b *FakeBlobs) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.Blobs, key)
	return nil
}

// FakeUserStore is an in-memory stand-in for the users collection. Emails
// are normalized and unique the way the real store enforces them.
type FakeUserStore struct {
	mu    sync.Mutex
	Users map[primitive.ObjectID]models.User
	Err   error
}

// NewFakeUserStore creates an empty fake user store.
func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{Users: map[primitive.ObjectID]models.User{}}
}

func (s *FakeUserStore) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	email = normalize.Email(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if u.Email == email {
			return nil, userstore.ErrEmailTaken
		}
	}
	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.Users[u.ID] = u
	return &u, nil
}

func (s *FakeUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.Users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *FakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	email = normalize.Email(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}
