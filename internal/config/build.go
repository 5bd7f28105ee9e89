package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kpauljoseph/cartuli/internal/deck"
	"github.com/kpauljoseph/cartuli/internal/scanner"
	"github.com/kpauljoseph/cartuli/internal/sheet"
	"github.com/kpauljoseph/cartuli/pkg/models"
)

// SheetSet is a sheet built from one or more decks.
type SheetSet struct {
	Decks []string
	Sheet *sheet.Sheet
}

// FileName is the output file name of the sheet.
func (s SheetSet) FileName() string {
	return strings.Join(s.Decks, "_") + ".pdf"
}

// SheetDecks splits a sheet key such as "heroes, villains" into deck names.
func SheetDecks(key string) []string {
	var names []string
	for _, name := range strings.Split(key, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// LoadDecks finds the images of every deck. Cards rejected by filter are
// left out; backs are paired with fronts in sorted file order.
func (c *Config) LoadDecks(ctx context.Context, s *scanner.Scanner, filter scanner.Filter) (map[string]*deck.Deck, error) {
	decks := make(map[string]*deck.Deck, len(c.Decks))

	for _, name := range sortedKeys(c.Decks) {
		def := c.Decks[name]
		size := def.Size.Size
		bleed := def.Bleed.Value

		fronts, err := s.FindImages(ctx, c.Dir, def.Front)
		if err != nil {
			return nil, fmt.Errorf("failed to load deck %q fronts: %w", name, err)
		}

		var backs []string
		if def.Back != "" {
			if backs, err = s.FindImages(ctx, c.Dir, def.Back); err != nil {
				return nil, fmt.Errorf("failed to load deck %q backs: %w", name, err)
			}
			if len(backs) != len(fronts) {
				return nil, fmt.Errorf("%w: deck %q has %d fronts and %d backs",
					ErrDefinition, name, len(fronts), len(backs))
			}
		}

		var defaultBack *models.CardImage
		if def.DefaultBack != "" {
			defaultBack = &models.CardImage{Path: c.path(def.DefaultBack), Size: size, Bleed: bleed}
		}

		d, err := deck.New(name, size, defaultBack)
		if err != nil {
			return nil, err
		}

		var cards []models.Card
		for i, front := range fronts {
			if !filter(front) {
				continue
			}
			back := ""
			if backs != nil {
				back = backs[i]
			}
			card := models.NewCard(size, front, back)
			card.Front.Bleed = bleed
			if card.Back != nil {
				card.Back.Bleed = bleed
			}
			cards = append(cards, card)
		}

		if err := d.AddCards(cards...); err != nil {
			return nil, err
		}
		decks[name] = d
	}

	return decks, nil
}

func (s Sheet) options(name string) []sheet.Option {
	opts := []sheet.Option{sheet.WithName(name)}
	if !s.Size.IsZero() {
		opts = append(opts, sheet.WithSize(s.Size.Size))
	}
	if s.Margin.Set {
		opts = append(opts, sheet.WithMargin(s.Margin.Value))
	}
	if s.PrintMargin.Set {
		opts = append(opts, sheet.WithPrintMargin(s.PrintMargin.Value))
	}
	if s.Padding.Set {
		opts = append(opts, sheet.WithPadding(s.Padding.Value))
	}
	if s.CropMarksPadding.Set {
		opts = append(opts, sheet.WithCropMarksPadding(s.CropMarksPadding.Value))
	}
	return opts
}

// BuildSheets creates the sheets of the definition. Without a sheets
// section every deck gets its own sheet with the default geometry.
func (c *Config) BuildSheets(decks map[string]*deck.Deck) ([]SheetSet, error) {
	defs := c.Sheets
	if len(defs) == 0 {
		defs = make(map[string]Sheet, len(decks))
		for name := range decks {
			defs[name] = Sheet{}
		}
	}

	var sets []SheetSet
	for _, key := range sortedKeys(defs) {
		names := SheetDecks(key)
		name := strings.Join(names, "_")

		sh, err := sheet.New(defs[key].options(name)...)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
		}

		for _, deckName := range names {
			d, ok := decks[deckName]
			if !ok {
				return nil, fmt.Errorf("%w: sheet %q uses unknown deck %q", ErrDefinition, key, deckName)
			}
			if err := sh.AddCards(d.Cards()...); err != nil {
				return nil, fmt.Errorf("failed to add deck %q to sheet %q: %w", deckName, name, err)
			}
		}

		sets = append(sets, SheetSet{Decks: names, Sheet: sh})
	}

	return sets, nil
}
