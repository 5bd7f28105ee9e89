package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type imageKey struct {
	path          string
	width, height int
}

// ImageLoader decodes card images scaled to a pixel size. Decoded images
// are cached, so a back shared by many cards is only decoded once. It is
// safe for concurrent use.
type ImageLoader struct {
	mu    sync.Mutex
	cache map[imageKey]image.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[imageKey]image.Image),
	}
}

// Load returns the image at path scaled to width x height pixels.
func (l *ImageLoader) Load(path string, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d for %s", width, height, path)
	}

	key := imageKey{path, width, height}
	l.mu.Lock()
	img, ok := l.cache[key]
	l.mu.Unlock()
	if ok {
		return img, nil
	}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err = loadSVG(path, width, height)
	} else {
		img, err = loadRaster(path, width, height)
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[key] = img
	l.mu.Unlock()
	return img, nil
}

func loadRaster(path string, width, height int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func loadSVG(path string, width, height int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
