// Package assets loads theme image pools used behind quiz questions.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"io/fs"
	"math/rand"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultTheme is the pool used for unknown themes
const DefaultTheme = "default"

// Placeholder size for missing images
const (
	placeholderW = 300
	placeholderH = 200
)

var placeholderColor = color.RGBA{255, 0, 255, 255}

// ThemeImages holds decoded images per theme
type ThemeImages struct {
	byTheme map[string][]*ebiten.Image
	rng     *rand.Rand
}

// Decoded is the CPU-side result of loading, before GPU upload
type Decoded struct {
	Placeholder image.Image
	Themes      map[string][]image.Image
}

// Decode reads <theme>/<i>.jpg (or .png) for i in 1..count for every theme.
// Files are decoded concurrently; any failure is replaced by the placeholder.
func Decode(ctx context.Context, fsys fs.FS, themes map[string]int, placeholderPath string, logger *zap.Logger) (*Decoded, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	placeholder := solidImage(placeholderW, placeholderH, placeholderColor)
	if placeholderPath != "" {
		img, err := decodeFile(fsys, placeholderPath)
		if err != nil {
			logger.Warn("placeholder image unavailable", zap.String("file", placeholderPath), zap.Error(err))
		} else {
			placeholder = img
		}
	}

	out := &Decoded{
		Placeholder: placeholder,
		Themes:      make(map[string][]image.Image, len(themes)),
	}
	for theme, count := range themes {
		if count > 0 {
			out.Themes[theme] = make([]image.Image, count)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for theme, imgs := range out.Themes {
		for i := range imgs {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				img, err := decodeTheme(fsys, theme, i+1)
				if err != nil {
					logger.Warn("theme image unavailable, using placeholder",
						zap.String("theme", theme),
						zap.Int("index", i+1),
						zap.Error(err),
					)
					img = placeholder
				}
				// Each goroutine owns a distinct slot.
				imgs[i] = img
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to decode theme images: %w", err)
	}

	return out, nil
}

// Upload converts decoded images into ebiten images
func (d *Decoded) Upload(seed int64) *ThemeImages {
	ti := &ThemeImages{
		byTheme: make(map[string][]*ebiten.Image, len(d.Themes)+1),
		rng:     rand.New(rand.NewSource(seed)),
	}

	placeholder := ebiten.NewImageFromImage(d.Placeholder)
	ti.byTheme[DefaultTheme] = []*ebiten.Image{placeholder}

	for theme, imgs := range d.Themes {
		pool := make([]*ebiten.Image, 0, len(imgs))
		for _, img := range imgs {
			if img == d.Placeholder {
				pool = append(pool, placeholder)
				continue
			}
			pool = append(pool, ebiten.NewImageFromImage(img))
		}
		ti.byTheme[theme] = pool
	}
	return ti
}

// Pick returns a random image for theme, falling back to the default pool
func (t *ThemeImages) Pick(theme string) *ebiten.Image {
	pool := t.byTheme[theme]
	if len(pool) == 0 {
		pool = t.byTheme[DefaultTheme]
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[t.rng.Intn(len(pool))]
}

// ThemeNames lists loaded theme names in sorted order
func (d *Decoded) ThemeNames() []string {
	names := make([]string, 0, len(d.Themes))
	for name := range d.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadImage decodes a single image such as the logo; nil when unavailable
func LoadImage(fsys fs.FS, name string, logger *zap.Logger) *ebiten.Image {
	if name == "" {
		return nil
	}
	img, err := decodeFile(fsys, name)
	if err != nil {
		if logger != nil {
			logger.Warn("image unavailable", zap.String("file", name), zap.Error(err))
		}
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

func decodeTheme(fsys fs.FS, theme string, i int) (image.Image, error) {
	var firstErr error
	for _, ext := range []string{".jpg", ".png"} {
		img, err := decodeFile(fsys, path.Join(theme, fmt.Sprintf("%d%s", i, ext)))
		if err == nil {
			return img, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
