package pdf

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// Writer assembles page images into a PDF document.
type Writer struct {
	conf   *model.Configuration
	logger *logger.Logger
}

func NewWriter(logger *logger.Logger) *Writer {
	return &Writer{
		conf:   model.NewDefaultConfiguration(),
		logger: logger,
	}
}

// WriteImages creates outFile with one page of size pageSize per image,
// each image stretched over its whole page. An existing outFile is replaced.
func (w *Writer) WriteImages(imageFiles []string, outFile string, pageSize measure.Size) error {
	if len(imageFiles) == 0 {
		return errors.New("no pages to write")
	}

	width := pageSize.Width / measure.PT
	height := pageSize.Height / measure.PT
	imp, err := api.Import(fmt.Sprintf("dim:%.4f %.4f, pos:full", width, height), types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to configure page import: %w", err)
	}

	// Importing into an existing file appends pages to it.
	if err := os.Remove(outFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace %s: %w", outFile, err)
	}

	w.logger.Debug("Writing %d pages of %.2f x %.2f points to %s", len(imageFiles), width, height, outFile)
	if err := api.ImportImagesFile(imageFiles, outFile, imp, w.conf); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return nil
}
