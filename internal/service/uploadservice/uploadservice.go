package uploadservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/storage"
	"go.uber.org/zap"
)

//go:generate mockgen -source=uploadservice.go -destination=mock_uploadservice.go -package=uploadservice

const (
	urlContentType = "text/uri-list"

	// sniffLen is how much of a file http.DetectContentType looks at.
	sniffLen = 512
)

var (
	ErrNoUploads       = errors.New("no files or urls to upload")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidURL      = errors.New("invalid design url")
)

var allowedTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/gif":  {},
}

type Repo interface {
	Create(ctx context.Context, uploads []domain.Upload) ([]domain.Upload, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Upload, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// File is one uploaded design file.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type Service struct {
	repo  Repo
	store ObjectStore
}

func New(repo Repo, store ObjectStore) *Service {
	return &Service{
		repo:  repo,
		store: store,
	}
}

// CreateUploads stores the files and registers one pending upload per file
// or url. Two or more items in one call share a new batch id.
func (s *Service) CreateUploads(ctx context.Context, userID int, files []File, urls []string) ([]domain.Upload, error) {
	total := len(files) + len(urls)
	if total == 0 {
		return nil, ErrNoUploads
	}

	checked := make([]File, 0, len(files))
	for _, f := range files {
		if _, ok := allowedTypes[f.ContentType]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, f.ContentType)
		}
		sniffed, err := sniff(f)
		if err != nil {
			return nil, err
		}
		checked = append(checked, sniffed)
	}
	for _, raw := range urls {
		if err := checkURL(raw); err != nil {
			return nil, err
		}
	}

	var batchID *string
	if total > 1 {
		id := uuid.NewString()
		batchID = &id
	}

	uploads := make([]domain.Upload, 0, total)
	for _, f := range checked {
		id := uuid.NewString()
		name := path.Base(f.Name)
		fileURL, err := s.store.Put(ctx, storage.ObjectKey(userID, id, name), f.Content, f.Size, f.ContentType)
		if err != nil {
			zap.L().Error("can't store design file", zap.String("file", name), zap.Error(err))
			return nil, err
		}
		uploads = append(uploads, domain.Upload{
			ID:          id,
			UserID:      userID,
			BatchID:     batchID,
			FileName:    name,
			FileURL:     fileURL,
			ContentType: f.ContentType,
			Status:      domain.UploadPending,
		})
	}
	for _, raw := range urls {
		source := strings.TrimSpace(raw)
		uploads = append(uploads, domain.Upload{
			ID:          uuid.NewString(),
			UserID:      userID,
			BatchID:     batchID,
			FileName:    source,
			FileURL:     source,
			SourceURL:   &source,
			ContentType: urlContentType,
			Status:      domain.UploadPending,
		})
	}

	created, err := s.repo.Create(ctx, uploads)
	if err != nil {
		zap.L().Error("can't save uploads", zap.Error(err))
		return nil, err
	}
	zap.L().Info("uploads registered", zap.Int("userID", userID), zap.Int("count", len(created)))
	return created, nil
}

func (s *Service) ListUploads(ctx context.Context, userID int) ([]domain.Upload, error) {
	uploads, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get uploads", zap.Error(err))
		return nil, err
	}
	return uploads, nil
}

func checkURL(raw string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

// sniff detects the file type from its leading bytes. The declared type is
// replaced by the detected one, and Content still yields the whole file.
func sniff(f File) (File, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f.Content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		zap.L().Error("can't read design file", zap.String("file", f.Name), zap.Error(err))
		return f, err
	}
	head = head[:n]

	detected, _, _ := strings.Cut(http.DetectContentType(head), ";")
	if _, ok := allowedTypes[detected]; !ok {
		return f, fmt.Errorf("%w: %s declared as %s", ErrUnsupportedType, detected, f.ContentType)
	}
	f.ContentType = detected
	f.Content = io.MultiReader(bytes.NewReader(head), f.Content)
	return f, nil
}
