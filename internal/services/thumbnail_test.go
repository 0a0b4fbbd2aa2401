package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnailStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := services.NewThumbnailStore(dir, "/uploads", 1<<20, 600, 60)
	ctx := context.Background()

	t.Run("resizes to configured width", func(t *testing.T) {
		url, err := store.Save(ctx, services.Thumbnail{ContentType: "image/png", Content: bytes.NewReader(pngBytes(t, 1200, 800))})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".jpg"))

		img, err := imaging.Open(filepath.Join(dir, filepath.Base(url)))
		require.NoError(t, err)
		assert.Equal(t, 600, img.Bounds().Dx())
		assert.Equal(t, 400, img.Bounds().Dy())

		require.NoError(t, store.Remove(ctx, url))
		_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects non image content type", func(t *testing.T) {
		_, err := store.Save(ctx, services.Thumbnail{ContentType: "text/plain", Content: strings.NewReader("hello")})
		assert.ErrorIs(t, err, services.ErrInvalidThumbnail)
	})

	t.Run("rejects undecodable image", func(t *testing.T) {
		_, err := store.Save(ctx, services.Thumbnail{ContentType: "image/png", Content: strings.NewReader("not a png")})
		assert.ErrorIs(t, err, services.ErrInvalidThumbnail)
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		small := services.NewThumbnailStore(dir, "/uploads", 10, 600, 60)
		_, err := small.Save(ctx, services.Thumbnail{ContentType: "image/png", Content: bytes.NewReader(pngBytes(t, 50, 50))})
		assert.ErrorIs(t, err, services.ErrThumbnailTooLarge)
	})

	t.Run("remove ignores foreign urls", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, "https://cdn.example.com/a.jpg"))
		assert.NoError(t, store.Remove(ctx, "/uploads/missing.jpg"))
	})
}
