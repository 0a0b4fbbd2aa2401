package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
)

var (
	ErrThumbnailRequired = errors.New("thumbnail is required")
	ErrInvalidThumbnail  = errors.New("thumbnail must be an image")
	ErrThumbnailTooLarge = errors.New("thumbnail exceeds the size limit")
)

// Thumbnail is an uploaded image before processing.
type Thumbnail struct {
	ContentType string
	Content     io.Reader
}

// ThumbnailStore resizes uploaded images and keeps them on local disk under dir,
// served below urlPrefix.
type ThumbnailStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	width     int
	quality   int
}

// NewThumbnailStore creates a store that writes JPEG files width pixels wide.
func NewThumbnailStore(dir, urlPrefix string, maxBytes int64, width, quality int) *ThumbnailStore {
	return &ThumbnailStore{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxBytes,
		width:     width,
		quality:   quality,
	}
}

// Save validates, resizes and stores the image and returns its public URL.
func (s *ThumbnailStore) Save(ctx context.Context, t Thumbnail) (string, error) {
	if !strings.HasPrefix(t.ContentType, "image/") {
		return "", ErrInvalidThumbnail
	}

	raw, err := io.ReadAll(io.LimitReader(t.Content, s.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(raw)) > s.maxBytes {
		return "", ErrThumbnailTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		logger.Log.Infow("failed to decode thumbnail", "contentType", t.ContentType, "error", err)
		return "", ErrInvalidThumbnail
	}
	img = imaging.Resize(img, s.width, 0, imaging.Lanczos)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ".jpg"
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if err := imaging.Encode(dst, img, imaging.JPEG, imaging.JPEGQuality(s.quality)); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	url := s.urlPrefix + "/" + name
	logger.Log.Infow("thumbnail stored", "url", url, "bytes", len(raw))

	return url, nil
}

// Remove deletes a file previously returned by Save. URLs outside the store are ignored.
func (s *ThumbnailStore) Remove(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.urlPrefix+"/") {
		return nil
	}
	name := path.Base(url)
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
