// Package pdf writes sheet documents and reads them back for checks.
package pdf

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// DimensionTolerance is the difference in points under which page sizes
// are considered equal.
const DimensionTolerance = 1.0

// PageInfo describes one page of a document. Sizes are in points.
type PageInfo struct {
	Number int
	Width  float64
	Height float64
}

// Size returns the page size in millimetres.
func (p PageInfo) Size() measure.Size {
	return measure.Size{Width: p.Width * measure.PT, Height: p.Height * measure.PT}
}

// MatchesDimensions reports whether a page of width x height points has the
// size of expected, allowing for rotation.
func MatchesDimensions(width, height float64, expected measure.Size) bool {
	w := expected.Width / measure.PT
	h := expected.Height / measure.PT

	widthMatch := math.Abs(width-w) <= DimensionTolerance
	heightMatch := math.Abs(height-h) <= DimensionTolerance

	rotatedWidthMatch := math.Abs(width-h) <= DimensionTolerance
	rotatedHeightMatch := math.Abs(height-w) <= DimensionTolerance

	return (widthMatch && heightMatch) || (rotatedWidthMatch && rotatedHeightMatch)
}

// PageDims returns the page sizes of a PDF file as pdfcpu reads them.
func PageDims(path string) ([]PageInfo, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dimensions: %w", err)
	}

	pages := make([]PageInfo, 0, len(dims))
	for i, dim := range dims {
		pages = append(pages, PageInfo{Number: i + 1, Width: dim.Width, Height: dim.Height})
	}
	return pages, nil
}

// Inspector renders and measures pages of existing documents.
type Inspector struct {
	logger *logger.Logger
}

func NewInspector(logger *logger.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// Pages returns the bounds of every page of the document at path.
func (i *Inspector) Pages(ctx context.Context, path string) ([]PageInfo, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var pages []PageInfo

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		bounds, err := doc.Bound(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to get bounds for page %d: %w", pageNum+1, err)
		}

		info := PageInfo{
			Number: pageNum + 1,
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
		}
		i.logger.Trace("Page %d dimensions: %.2f x %.2f", info.Number, info.Width, info.Height)
		pages = append(pages, info)
	}

	return pages, nil
}

// PageImage renders a 1 based page at dpi.
func (i *Inspector) PageImage(path string, page int, dpi float64) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if page < 1 || page > doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range, document has %d pages", page, doc.NumPage())
	}

	img, err := doc.ImageDPI(page-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to extract image for page %d: %w", page, err)
	}
	return img, nil
}
