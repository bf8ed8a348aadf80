package provider

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/models"
)

// writeTestPNG writes a width x height PNG file and returns its path.
func writeTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestFSProvider_RequestAccess_Authorized(t *testing.T) {
	p := NewFSProvider(t.TempDir(), logger.Nop())

	level, err := p.RequestAccess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AccessAuthorized, level)
}

func TestFSProvider_RequestAccess_MissingRootDenied(t *testing.T) {
	p := NewFSProvider(filepath.Join(t.TempDir(), "nope"), logger.Nop())

	level, err := p.RequestAccess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AccessDenied, level)
}

func TestFSProvider_RequestAccess_EmptyRootNotDetermined(t *testing.T) {
	p := NewFSProvider("", logger.Nop())

	level, err := p.RequestAccess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AccessNotDetermined, level)
}

func TestFSProvider_FetchAll_ListsOnlyImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 4, 4)
	writeTestPNG(t, dir, "b.png", 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a photo"), 0o644))

	p := NewFSProvider(dir, logger.Nop())

	assets, err := p.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "a.png", assets[0].Ref.ID)
	assert.Equal(t, "b.png", assets[1].Ref.ID)
	assert.False(t, assets[0].CreatedAt.IsZero())
}

func TestFSProvider_FetchAll_RecursesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "2024")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeTestPNG(t, sub, "trip.png", 4, 4)

	p := NewFSProvider(dir, logger.Nop())

	assets, err := p.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "2024/trip.png", assets[0].Ref.ID)
}

func TestFSProvider_ResolveImage_DownscalesToFit(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "big.png", 100, 60)

	p := NewFSProvider(dir, logger.Nop())

	data, err := p.ResolveImage(context.Background(), models.AssetRef{ID: "big.png"}, models.ImageSize{Width: 50, Height: 50})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 50)
	assert.LessOrEqual(t, img.Bounds().Dy(), 50)
}

func TestFSProvider_ResolveImage_KeepsSmallImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "small.png", 10, 8)

	p := NewFSProvider(dir, logger.Nop())

	data, err := p.ResolveImage(context.Background(), models.AssetRef{ID: "small.png"}, models.ImageSize{Width: 50, Height: 50})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestFSProvider_ResolveImage_NotFound(t *testing.T) {
	p := NewFSProvider(t.TempDir(), logger.Nop())

	_, err := p.ResolveImage(context.Background(), models.AssetRef{ID: "gone.png"}, models.ImageSize{Width: 50, Height: 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSProvider_ResolveImage_RefEscapeRejected(t *testing.T) {
	p := NewFSProvider(t.TempDir(), logger.Nop())

	_, err := p.ResolveImage(context.Background(), models.AssetRef{ID: "../outside.png"}, models.ImageSize{Width: 50, Height: 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestFSProvider_Delete_RemovesBatch(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 4, 4)
	writeTestPNG(t, dir, "b.png", 4, 4)

	p := NewFSProvider(dir, logger.Nop())

	err := p.Delete(context.Background(), []models.AssetRef{{ID: "a.png"}, {ID: "b.png"}})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "a.png"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(dir, "b.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFSProvider_Delete_UnknownAssetFailsWithoutRemoving(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "keepme.png", 4, 4)

	p := NewFSProvider(dir, logger.Nop())

	err := p.Delete(context.Background(), []models.AssetRef{{ID: "keepme.png"}, {ID: "missing.png"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// Pre-check failed, so the existing asset must still be there.
	_, statErr := os.Stat(filepath.Join(dir, "keepme.png"))
	assert.NoError(t, statErr)
}
