package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"kisanbandhu/console/internal/imagehost"
)

// Upload size cap. Cloudinary's free tier rejects larger files anyway;
// failing early keeps the error local.
const maxImageSize = 10 << 20

// Upload states.
const (
	UploadStatusUploading = "uploading"
	UploadStatusDone      = "done"
	UploadStatusError     = "error"
)

// Upload is the observable state of one image transfer. The editor polls
// it by ID while the upload runs.
type Upload struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Percent   int       `json:"percent"`
	URL       string    `json:"url,omitempty"`
	PublicID  string    `json:"public_id,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageService streams image files to the hosting provider and tracks
// per-upload progress.
type ImageService interface {
	// Upload runs the transfer to completion and returns the final state.
	// Progress is observable through Get while it runs.
	Upload(ctx context.Context, filename, contentType string, src io.Reader, size int64) (*Upload, error)
	// Get returns a snapshot of an upload, or nil when the ID is unknown.
	Get(id string) *Upload
}

type imageService struct {
	host imagehost.Uploader

	mu      sync.RWMutex
	uploads map[string]*Upload
}

// NewImageService creates a new image service.
func NewImageService(host imagehost.Uploader) ImageService {
	return &imageService{
		host:    host,
		uploads: make(map[string]*Upload),
	}
}

func (s *imageService) Upload(ctx context.Context, filename, contentType string, src io.Reader, size int64) (*Upload, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalidf("file", "only image files can be uploaded")
	}
	if size <= 0 {
		return nil, invalidf("file", "file is empty")
	}
	if size > maxImageSize {
		return nil, invalidf("file", "file exceeds the 10 MB limit")
	}

	id := uuid.New().String()
	s.track(&Upload{
		ID:        id,
		Status:    UploadStatusUploading,
		CreatedAt: time.Now(),
	})

	image, err := s.host.Upload(ctx, filename, src, size, func(percent int) {
		s.setPercent(id, percent)
	})
	if err != nil {
		s.fail(id, err)
		return s.Get(id), err
	}

	s.complete(id, image)
	return s.Get(id), nil
}

func (s *imageService) Get(id string) *Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	up, ok := s.uploads[id]
	if !ok {
		return nil
	}
	copied := *up
	return &copied
}

func (s *imageService) track(up *Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[up.ID] = up
	s.evictLocked()
}

func (s *imageService) setPercent(id string, percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if up, ok := s.uploads[id]; ok && up.Status == UploadStatusUploading {
		up.Percent = percent
	}
}

func (s *imageService) complete(id string, image imagehost.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if up, ok := s.uploads[id]; ok {
		up.Status = UploadStatusDone
		up.Percent = 100
		up.URL = image.SecureURL
		up.PublicID = image.PublicID
	}
}

func (s *imageService) fail(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if up, ok := s.uploads[id]; ok {
		up.Status = UploadStatusError
		up.Error = err.Error()
	}
}

// evictLocked drops finished uploads older than an hour so the map does
// not grow forever. Callers hold the write lock.
func (s *imageService) evictLocked() {
	cutoff := time.Now().Add(-time.Hour)
	for id, up := range s.uploads {
		if up.Status != UploadStatusUploading && up.CreatedAt.Before(cutoff) {
			delete(s.uploads, id)
		}
	}
}
