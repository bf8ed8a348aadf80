package provider

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/models"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

type fsProvider struct {
	root   string
	logger *logger.Logger
}

// NewFSProvider constructs an [AssetProvider] backed by a directory of image
// files. Asset refs are root-relative paths; capture dates come from file
// modification times.
func NewFSProvider(root string, log *logger.Logger) AssetProvider {
	return &fsProvider{root: root, logger: log}
}

// RequestAccess implements [AssetProvider]. The tri-state permission of a
// platform photo store maps onto directory readability: an unset root is
// "not determined", a missing or unreadable root is denied/restricted, and a
// listable directory is authorized.
func (p *fsProvider) RequestAccess(ctx context.Context) (models.AccessLevel, error) {
	if p.root == "" {
		return models.AccessNotDetermined, nil
	}

	info, err := os.Stat(p.root)
	if err != nil {
		if os.IsNotExist(err) {
			return models.AccessDenied, nil
		}
		if os.IsPermission(err) {
			return models.AccessRestricted, nil
		}
		return models.AccessNotDetermined, fmt.Errorf("stat photo root: %w", err)
	}
	if !info.IsDir() {
		return models.AccessDenied, nil
	}

	if _, err = os.ReadDir(p.root); err != nil {
		if os.IsPermission(err) {
			return models.AccessRestricted, nil
		}
		return models.AccessNotDetermined, fmt.Errorf("read photo root: %w", err)
	}

	return models.AccessAuthorized, nil
}

// FetchAll implements [AssetProvider]. It walks the root directory and
// returns one asset per file with a known image extension.
func (p *fsProvider) FetchAll(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset

	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.root, path)
		if err != nil {
			return err
		}

		assets = append(assets, models.Asset{
			Ref:       models.AssetRef{ID: filepath.ToSlash(rel)},
			CreatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate photo root: %w", err)
	}

	// Stable listing order for callers that do not re-sort.
	sort.Slice(assets, func(i, j int) bool { return assets[i].Ref.ID < assets[j].Ref.ID })

	return assets, nil
}

// ResolveImage implements [AssetProvider]. It decodes the file behind ref,
// downscales it to fit the target size, and returns the re-encoded preview.
func (p *fsProvider) ResolveImage(ctx context.Context, ref models.AssetRef, size models.ImageSize) ([]byte, error) {
	path, err := p.assetPath(ref)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open asset %s: %w", ref.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("open asset %s: %w", ref.ID, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", ref.ID, err)
	}

	scaled := scaleToFit(img, size)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode preview for asset %s: %w", ref.ID, err)
	}

	return buf.Bytes(), nil
}

// Delete implements [AssetProvider]. Every handle is verified before the
// first file is removed, so an unknown ref fails the batch without touching
// the filesystem.
func (p *fsProvider) Delete(ctx context.Context, refs []models.AssetRef) error {
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		path, err := p.assetPath(ref)
		if err != nil {
			return err
		}
		if _, err = os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("delete asset %s: %w", ref.ID, ErrNotFound)
			}
			return fmt.Errorf("delete asset %s: %w", ref.ID, err)
		}
		paths = append(paths, path)
	}

	for i, path := range paths {
		if err := os.Remove(path); err != nil {
			p.logger.Err(err).Str("asset", refs[i].ID).Msg("bulk delete stopped mid-batch")
			return fmt.Errorf("remove asset %s: %w", refs[i].ID, err)
		}
	}

	return nil
}

func (p *fsProvider) assetPath(ref models.AssetRef) (string, error) {
	path := filepath.Join(p.root, filepath.FromSlash(ref.ID))
	rel, err := filepath.Rel(p.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("asset ref %q escapes photo root: %w", ref.ID, ErrBadRequest)
	}
	return path, nil
}

// scaleToFit shrinks src so both dimensions fit within target, preserving
// aspect ratio. Images already within bounds are returned unchanged; no
// upscaling is performed.
func scaleToFit(src image.Image, target models.ImageSize) image.Image {
	if target.Width <= 0 || target.Height <= 0 {
		return src
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= target.Width && h <= target.Height {
		return src
	}

	scaleX := float64(target.Width) / float64(w)
	scaleY := float64(target.Height) / float64(h)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	for y := 0; y < nh; y++ {
		srcY := b.Min.Y + y*h/nh
		for x := 0; x < nw; x++ {
			dst.Set(x, y, src.At(b.Min.X+x*w/nw, srcY))
		}
	}

	return dst
}
