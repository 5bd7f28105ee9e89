// Package config loads Cartulifile definitions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/cartuli/pkg/measure"
)

const DefaultFile = "Cartulifile.yml"

var ErrDefinition = errors.New("invalid definition")

// Length is a length expression such as "5*mm" evaluated while loading.
type Length struct {
	Value float64
	Set   bool
}

func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: length must be a scalar", ErrDefinition, node.Line)
	}
	v, err := measure.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrDefinition, node.Line, err)
	}
	*l = Length{Value: v, Set: true}
	return nil
}

// Size is a size expression, a name like "A4" or a pair like "(63*mm, 88*mm)".
type Size struct {
	measure.Size
}

func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: size must be a scalar", ErrDefinition, node.Line)
	}
	size, err := measure.ParseSize(node.Value)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrDefinition, node.Line, err)
	}
	s.Size = size
	return nil
}

type Deck struct {
	Size        Size   `yaml:"size"`
	DefaultBack string `yaml:"default_back"`
	Front       string `yaml:"front"`
	Back        string `yaml:"back"`
	Bleed       Length `yaml:"bleed"`
}

type Sheet struct {
	Size             Size   `yaml:"size"`
	Margin           Length `yaml:"margin"`
	PrintMargin      Length `yaml:"print_margin"`
	Padding          Length `yaml:"padding"`
	CropMarksPadding Length `yaml:"crop_marks_padding"`
}

type Config struct {
	Decks  map[string]Deck  `yaml:"decks"`
	Sheets map[string]Sheet `yaml:"sheets"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Load reads a definition file. A directory path loads DefaultFile in it.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		path = filepath.Join(path, DefaultFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Decks) == 0 {
		return fmt.Errorf("%w: no decks defined", ErrDefinition)
	}

	for name, d := range c.Decks {
		if d.Size.IsZero() {
			return fmt.Errorf("%w: deck %q has no card size", ErrDefinition, name)
		}
		if d.Front == "" {
			return fmt.Errorf("%w: deck %q has no front images", ErrDefinition, name)
		}
		if d.Back != "" && d.DefaultBack != "" {
			return fmt.Errorf("%w: deck %q has both back and default_back", ErrDefinition, name)
		}
	}

	for names, s := range c.Sheets {
		if s.Margin.Set && s.PrintMargin.Set {
			return fmt.Errorf("%w: sheet %q has both margin and print_margin", ErrDefinition, names)
		}
		for _, name := range SheetDecks(names) {
			if _, ok := c.Decks[name]; !ok {
				return fmt.Errorf("%w: sheet %q uses unknown deck %q", ErrDefinition, names, name)
			}
		}
	}

	return nil
}
