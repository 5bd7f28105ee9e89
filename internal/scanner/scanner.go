// Package scanner finds card images on disk.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kpauljoseph/cartuli/pkg/logger"
)

// ImageExtensions lists the file extensions treated as card images.
var ImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".svg":  true,
}

type Scanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Scanner {
	return &Scanner{
		logger: logger,
	}
}

// FindImages walks dir and returns, sorted, the images whose path relative
// to dir matches pattern. An empty pattern matches every image.
func (s *Scanner) FindImages(ctx context.Context, dir, pattern string) ([]string, error) {
	if pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	var images []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if entry.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if !ImageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}
		if pattern != "" {
			if ok, _ := filepath.Match(filepath.FromSlash(pattern), relPath); !ok {
				return nil
			}
		}

		s.logger.Trace("Found image: %s", relPath)
		images = append(images, path)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(images) == 0 {
		if pattern == "" {
			pattern = "*"
		}
		return nil, fmt.Errorf("no card images found matching %s in %s", pattern, dir)
	}

	sort.Strings(images)
	return images, nil
}

// Filter selects cards by file path.
type Filter func(path string) bool

// NewFilter returns a filter accepting paths that contain any of patterns,
// which are regular expressions. Without patterns every path is accepted.
func NewFilter(patterns []string) (Filter, error) {
	if len(patterns) == 0 {
		return func(string) bool { return true }, nil
	}

	re, err := regexp.Compile(`^.*(` + strings.Join(patterns, "|") + `).*$`)
	if err != nil {
		return nil, fmt.Errorf("invalid card filter: %w", err)
	}
	return re.MatchString, nil
}
