package store

import (
	"errors"
	"sync"

	"github.com/vincfleurette/agenda-spv/internal/service/excel"
)

// ErrNotFound is returned for unknown or already removed file IDs.
var ErrNotFound = errors.New("fichier introuvable ou expiré")

// Upload is one uploaded workbook kept for the lifetime of the process.
type Upload struct {
	FileName string
	Workbook *excel.Workbook
}

// UploadStore is the in-memory registry of uploaded workbooks, keyed by
// file ID. Nothing is persisted; a restart forgets every upload.
type UploadStore struct {
	uploads map[string]*Upload
	mu      sync.RWMutex
}

// NewUploadStore creates an empty registry.
func NewUploadStore() *UploadStore {
	return &UploadStore{
		uploads: make(map[string]*Upload),
	}
}

// Put registers an upload under its workbook's file ID.
func (s *UploadStore) Put(up *Upload) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := up.Workbook.ID()
	s.uploads[id] = up
	return id
}

// Get returns the upload for a file ID.
func (s *UploadStore) Get(id string) (*Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	up, ok := s.uploads[id]
	if !ok {
		return nil, ErrNotFound
	}
	return up, nil
}

// Remove drops an upload and closes its workbook.
func (s *UploadStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	up, ok := s.uploads[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.uploads, id)
	return up.Workbook.Close()
}

// Len returns the number of live uploads.
func (s *UploadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.uploads)
}
