// Package deck groups cards that share a size and, optionally, a back.
package deck

import (
	"errors"
	"fmt"

	"github.com/kpauljoseph/cartuli/pkg/measure"
	"github.com/kpauljoseph/cartuli/pkg/models"
)

var (
	ErrEmptyDeck   = errors.New("deck is empty")
	ErrCardSize    = errors.New("card size mismatch")
	ErrDefaultBack = errors.New("card back differs from deck back")
)

type Deck struct {
	name  string
	size  measure.Size
	back  *models.CardImage
	cards []models.Card
}

// New creates a deck. A zero size is taken from back or, failing that,
// from the first card. Every card without a back gets back.
func New(name string, size measure.Size, back *models.CardImage) (*Deck, error) {
	d := &Deck{name: name, size: size}

	if back != nil {
		b := *back
		switch {
		case b.Size.IsZero() && size.IsZero():
			return nil, fmt.Errorf("%w: deck %q needs a card size to use back %s", ErrCardSize, name, b.Path)
		case b.Size.IsZero():
			b.Size = size
		case size.IsZero():
			d.size = b.Size
		case !b.Size.Equal(size):
			return nil, fmt.Errorf("%w: deck %q back %s is %s, cards are %s", ErrCardSize, name, b.Path, b.Size, size)
		}
		d.back = &b
	}

	return d, nil
}

func (d *Deck) Name() string {
	return d.name
}

func (d *Deck) Size() measure.Size {
	return d.size
}

// Back is the default back, nil when the deck has none.
func (d *Deck) Back() *models.CardImage {
	return d.back
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []models.Card {
	return append([]models.Card(nil), d.cards...)
}

// AddCards appends cards to the deck. Either all cards are added or none.
func (d *Deck) AddCards(cards ...models.Card) error {
	size := d.size
	added := make([]models.Card, 0, len(cards))

	for _, card := range cards {
		if size.IsZero() {
			size = card.Size
		}
		if !card.Size.Equal(size) {
			return fmt.Errorf("%w: card %q is %s, deck %q is %s", ErrCardSize, card.Name, card.Size, d.name, size)
		}

		if d.back != nil {
			if card.Back != nil && !card.Back.Equal(*d.back) {
				return fmt.Errorf("%w: card %q in deck %q", ErrDefaultBack, card.Name, d.name)
			}
			back := *d.back
			card.Back = &back
		}
		added = append(added, card)
	}

	d.size = size
	d.cards = append(d.cards, added...)
	return nil
}

// TwoSided reports whether the deck cards have backs.
func (d *Deck) TwoSided() (bool, error) {
	if len(d.cards) == 0 {
		return false, fmt.Errorf("%w: deck %q is neither one nor two sided yet", ErrEmptyDeck, d.name)
	}
	return d.cards[0].TwoSided(), nil
}
