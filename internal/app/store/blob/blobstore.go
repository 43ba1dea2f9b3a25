// Package blob adapts the storage backend into the byte-oriented interface
// the directory and content services work with.
//
// Blobs are addressed by generated keys that carry no extension; the content
// type of a file is recovered from its metadata record's name, never from
// the stored blob.
package blob

import (
	"bytes"
	"context"
	"io"

	"github.com/dalemusser/waffle/pantry/storage"
)

// Store reads and writes whole blobs against a storage backend.
type Store struct {
	backend storage.Store
}

// New creates a blob store over the given storage backend.
func New(backend storage.Store) *Store {
	return &Store{backend: backend}
}

// Put writes data under key. The containing directory is created by the
// backend if absent.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	opts := &storage.PutOptions{
		ContentType: "application/octet-stream",
	}
	return s.backend.Put(ctx, key, bytes.NewReader(data), opts)
}

// Get reads the full content stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// Delete removes the blob stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}
