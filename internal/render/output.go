package render

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/cartuli/internal/pdf"
	"github.com/kpauljoseph/cartuli/internal/sheet"
	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/utils"
)

var ErrOutputFormat = errors.New("unsupported output format")

// Output writes sheets as PDF documents. Every front page of a two sided
// sheet is followed by its back page.
type Output struct {
	rasterizer *Rasterizer
	writer     *pdf.Writer
	logger     *logger.Logger
}

func NewOutput(rasterizer *Rasterizer, logger *logger.Logger) *Output {
	return &Output{
		rasterizer: rasterizer,
		writer:     pdf.NewWriter(logger),
		logger:     logger,
	}
}

// SheetOutput renders every page of s into the PDF file at path and returns
// the absolute path written.
func (o *Output) SheetOutput(ctx context.Context, s *sheet.Sheet, path string) (string, error) {
	path, err := utils.ExpandPath(path)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("%w: %s", ErrOutputFormat, path)
	}
	if s.Pages() == 0 {
		return "", fmt.Errorf("%w: sheet %q has no cards", sheet.ErrConfiguration, s.Name())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "cartuli-pages-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	twoSided := s.TwoSided()
	var pages []string
	for page := 1; page <= s.Pages(); page++ {
		file, err := o.writePage(ctx, s, page, false, tmpDir)
		if err != nil {
			return "", err
		}
		pages = append(pages, file)

		if twoSided {
			file, err := o.writePage(ctx, s, page, true, tmpDir)
			if err != nil {
				return "", err
			}
			pages = append(pages, file)
		}
	}

	if err := o.writer.WriteImages(pages, path, s.Size()); err != nil {
		return "", err
	}

	o.logger.Info("Created %s with %d cards in %d pages", path, s.Len(), len(pages))
	return path, nil
}

func (o *Output) writePage(ctx context.Context, s *sheet.Sheet, page int, back bool, dir string) (string, error) {
	img, err := o.rasterizer.RenderPage(ctx, s, page, back)
	if err != nil {
		return "", fmt.Errorf("failed to render page %d: %w", page, err)
	}

	side := "front"
	if back {
		side = "back"
	}
	file := filepath.Join(dir, fmt.Sprintf("page_%03d_%s.png", page, side))

	f, err := os.Create(file)
	if err != nil {
		return "", fmt.Errorf("failed to create page image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode page %d: %w", page, err)
	}
	return file, nil
}
