// Package sheet lays out cards on printable pages.
//
// A Sheet is an append only list of same sized cards plus the page geometry
// used to print them. Its Layout answers where each card goes and where the
// crop and registration marks are drawn. Nothing in this package does I/O.
package sheet

import (
	"fmt"

	"github.com/kpauljoseph/cartuli/pkg/measure"
	"github.com/kpauljoseph/cartuli/pkg/models"
)

const (
	DefaultMargin           = 5 * measure.MM
	DefaultPadding          = 4 * measure.MM
	DefaultCropMarksPadding = 1 * measure.MM
)

var DefaultSize = measure.A4

// Sheet holds cards to be printed together. A Sheet must not be modified
// from several goroutines at once; once every card is added it can be read
// concurrently.
type Sheet struct {
	name             string
	size             measure.Size
	cardSize         measure.Size
	margin           float64
	printMargin      float64
	padding          float64
	cropMarksPadding float64

	marginSet      bool
	printMarginSet bool

	cards  []models.Card
	layout *Layout
}

type Option func(*Sheet)

func WithName(name string) Option {
	return func(s *Sheet) {
		s.name = name
	}
}

func WithSize(size measure.Size) Option {
	return func(s *Sheet) {
		s.size = size
	}
}

// WithCardSize fixes the card size. Without it the size of the first added
// card is used.
func WithCardSize(size measure.Size) Option {
	return func(s *Sheet) {
		s.cardSize = size
	}
}

func WithMargin(margin float64) Option {
	return func(s *Sheet) {
		s.margin = margin
		s.marginSet = true
	}
}

// WithPrintMargin sets the border the printer cannot reach. The card grid
// is centred with margins no smaller than it.
func WithPrintMargin(printMargin float64) Option {
	return func(s *Sheet) {
		s.printMargin = printMargin
		s.printMarginSet = true
	}
}

func WithPadding(padding float64) Option {
	return func(s *Sheet) {
		s.padding = padding
	}
}

func WithCropMarksPadding(padding float64) Option {
	return func(s *Sheet) {
		s.cropMarksPadding = padding
	}
}

func New(options ...Option) (*Sheet, error) {
	s := &Sheet{
		size:             DefaultSize,
		margin:           DefaultMargin,
		padding:          DefaultPadding,
		cropMarksPadding: DefaultCropMarksPadding,
	}

	for _, opt := range options {
		opt(s)
	}

	if s.marginSet && s.printMarginSet {
		return nil, fmt.Errorf("%w: margin and print margin are mutually exclusive", ErrConfiguration)
	}

	if !s.cardSize.IsZero() {
		if _, err := s.Layout(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Sheet) config(cardSize measure.Size) Config {
	c := Config{
		PageSize:         s.size,
		CardSize:         cardSize,
		Padding:          s.padding,
		Margin:           s.margin,
		CropMarksPadding: s.cropMarksPadding,
	}
	if s.printMarginSet {
		c.Margin = 0
		c.PrintMargin = s.printMargin
	}
	return c
}

// Layout returns the page geometry. It fails until the card size is known.
func (s *Sheet) Layout() (*Layout, error) {
	if s.layout != nil {
		return s.layout, nil
	}
	if s.cardSize.IsZero() {
		return nil, fmt.Errorf("%w: card size is not set and sheet %q has no cards", ErrConfiguration, s.name)
	}

	layout, err := NewLayout(s.config(s.cardSize))
	if err != nil {
		return nil, err
	}
	s.layout = layout
	return layout, nil
}

// AddCards appends cards in print order. Either every card is added or, on
// error, none is.
func (s *Sheet) AddCards(cards ...models.Card) error {
	if len(cards) == 0 {
		return nil
	}

	cardSize := s.cardSize
	var layout *Layout
	if cardSize.IsZero() {
		cardSize = cards[0].Size
		var err error
		if layout, err = NewLayout(s.config(cardSize)); err != nil {
			return err
		}
	}

	for _, card := range cards {
		if !card.Size.Equal(cardSize) {
			return fmt.Errorf("%w: card %q size %s does not fit in sheet with %s cards",
				ErrConfiguration, card.Name, card.Size, cardSize)
		}
	}

	if layout != nil {
		s.cardSize = cardSize
		s.layout = layout
	}
	s.cards = append(s.cards, cards...)
	return nil
}

func (s *Sheet) Name() string {
	return s.name
}

func (s *Sheet) Size() measure.Size {
	return s.size
}

// CardSize is the size shared by every card, zero while unknown.
func (s *Sheet) CardSize() measure.Size {
	return s.cardSize
}

func (s *Sheet) Padding() float64 {
	return s.padding
}

// PrintMargin returns the configured print margin, zero when the sheet uses
// a fixed margin.
func (s *Sheet) PrintMargin() float64 {
	if !s.printMarginSet {
		return 0
	}
	return s.printMargin
}

func (s *Sheet) CropMarksPadding() float64 {
	return s.cropMarksPadding
}

func (s *Sheet) Len() int {
	return len(s.cards)
}

func (s *Sheet) Cards() []models.Card {
	return append([]models.Card(nil), s.cards...)
}

// TwoSided reports whether any card has a back image.
func (s *Sheet) TwoSided() bool {
	for _, card := range s.cards {
		if card.TwoSided() {
			return true
		}
	}
	return false
}

// Pages is the number of pages needed to print every card.
func (s *Sheet) Pages() int {
	if len(s.cards) == 0 || s.layout == nil {
		return 0
	}
	perPage := s.layout.NumCardsPerPage()
	return (len(s.cards) + perPage - 1) / perPage
}

// PageCards returns the cards of a 1 based page. Pages past the last one
// are empty.
func (s *Sheet) PageCards(page int) []models.Card {
	if page < 1 || page > s.Pages() {
		return []models.Card{}
	}

	perPage := s.layout.NumCardsPerPage()
	start := (page - 1) * perPage
	end := min(start+perPage, len(s.cards))
	return append([]models.Card(nil), s.cards[start:end]...)
}
