// Package render paints sheet pages: card images, crop marks and
// registration marks.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/fogleman/gg"

	"github.com/kpauljoseph/cartuli/internal/sheet"
	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/measure"
	"github.com/kpauljoseph/cartuli/pkg/models"
)

const DefaultDPI = 300

var (
	markColor       = color.Black
	backgroundColor = color.White
)

type Rasterizer struct {
	dpi              float64
	strokeWidth      float64
	registrationSize float64
	workers          int
	loader           *ImageLoader
	logger           *logger.Logger
}

type Option func(*Rasterizer)

func WithDPI(dpi float64) Option {
	return func(r *Rasterizer) {
		r.dpi = dpi
	}
}

// WithStrokeWidth sets the width of every mark line in millimetres.
func WithStrokeWidth(width float64) Option {
	return func(r *Rasterizer) {
		r.strokeWidth = width
	}
}

func WithRegistrationMarkSize(size float64) Option {
	return func(r *Rasterizer) {
		r.registrationSize = size
	}
}

// WithWorkers bounds how many images are decoded at once.
func WithWorkers(n int) Option {
	return func(r *Rasterizer) {
		r.workers = n
	}
}

func NewRasterizer(logger *logger.Logger, options ...Option) *Rasterizer {
	r := &Rasterizer{
		dpi:              DefaultDPI,
		strokeWidth:      DefaultMarkWidth,
		registrationSize: sheet.DefaultRegistrationMarkSize,
		workers:          runtime.NumCPU(),
		loader:           NewImageLoader(),
		logger:           logger,
	}

	for _, opt := range options {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = 1
	}

	return r
}

func (r *Rasterizer) DPI() float64 {
	return r.dpi
}

// pixelsPerMM is the canvas scale.
func (r *Rasterizer) pixelsPerMM() float64 {
	return r.dpi / measure.Inch
}

func (r *Rasterizer) pixels(mm float64) int {
	return int(math.Round(mm * r.pixelsPerMM()))
}

type placement struct {
	card     models.Card
	face     models.CardImage
	position measure.Point
	img      image.Image
}

// place returns the faces drawn on a page, each at its grid position. Back
// pages use mirrored columns and skip cards without back.
func (r *Rasterizer) place(s *sheet.Sheet, layout *sheet.Layout, page int, back bool) ([]placement, error) {
	var placements []placement
	for i, card := range s.PageCards(page) {
		face := card.Front
		if back {
			if card.Back == nil {
				continue
			}
			face = *card.Back
		}

		coordinates, err := layout.CardCoordinates(i+1, back)
		if err != nil {
			return nil, err
		}
		position, err := layout.CardPosition(coordinates)
		if err != nil {
			return nil, err
		}

		r.logger.Trace("Placing card %d %q on page %d (back: %t) at %s", i+1, card.Name, page, back, coordinates)
		placements = append(placements, placement{card: card, face: face, position: position})
	}
	return placements, nil
}

// loadImages decodes the images of placements concurrently.
func (r *Rasterizer) loadImages(ctx context.Context, placements []placement) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, r.workers)

	for i := range placements {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(p *placement) {
			defer wg.Done()
			defer func() { <-sem }()

			size := p.face.ImageSize()
			img, err := r.loader.Load(p.face.Path, r.pixels(size.Width), r.pixels(size.Height))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to load card %q: %w", p.card.Name, err)
				}
				return
			}
			p.img = img
		}(&placements[i])
	}

	wg.Wait()
	return firstErr
}

// RenderPage paints the front or back side of a 1 based page.
func (r *Rasterizer) RenderPage(ctx context.Context, s *sheet.Sheet, page int, back bool) (*image.RGBA, error) {
	if page < 1 || page > s.Pages() {
		return nil, fmt.Errorf("%w: page %d of %d", sheet.ErrOutOfBounds, page, s.Pages())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layout, err := s.Layout()
	if err != nil {
		return nil, err
	}

	placements, err := r.place(s, layout, page, back)
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, placements); err != nil {
		return nil, err
	}

	size := s.Size()
	dc := gg.NewContext(r.pixels(size.Width), r.pixels(size.Height))
	dc.SetColor(backgroundColor)
	dc.Clear()

	canvas := &pageCanvas{dc: dc, page: size, scale: r.pixelsPerMM(), stroke: r.strokeWidth}

	for _, p := range placements {
		bleed := p.face.Bleed
		imageSize := p.face.ImageSize()
		left := canvas.x(p.position.X - bleed)
		top := canvas.y(p.position.Y - bleed + imageSize.Height)
		dc.DrawImage(p.img, int(math.Round(left)), int(math.Round(top)))
	}

	canvas.drawCropMarks(layout.CropMarks())

	mark := newRegistrationMark(r.registrationSize, DefaultRegistrationMarkMargin)
	for _, center := range layout.RegistrationMarks(r.registrationSize) {
		canvas.drawRegistrationMark(mark, center)
	}

	r.logger.Debug("Rendered page %d (back: %t) of sheet %q with %d cards", page, back, s.Name(), len(placements))

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas image type %T", dc.Image())
	}
	return img, nil
}
