package models

import (
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// CardImage is one face of a card. Bleed is the extra image border around
// the nominal size that is trimmed away after cutting.
type CardImage struct {
	Path  string
	Size  measure.Size
	Bleed float64
}

// ImageSize is the printed size of the image, bleed included.
func (i CardImage) ImageSize() measure.Size {
	return i.Size.Grow(2 * i.Bleed)
}

func (i CardImage) Equal(o CardImage) bool {
	return i.Path == o.Path && i.Size.Equal(o.Size) && measure.IsClose(i.Bleed, o.Bleed)
}

// Card is a one or two sided card.
type Card struct {
	Name  string
	Size  measure.Size
	Front CardImage
	Back  *CardImage
}

// NewCard creates a card whose name is the front image file name without
// extension.
func NewCard(size measure.Size, front string, back string) Card {
	card := Card{
		Name:  strings.TrimSuffix(filepath.Base(front), filepath.Ext(front)),
		Size:  size,
		Front: CardImage{Path: front, Size: size},
	}
	if back != "" {
		card.Back = &CardImage{Path: back, Size: size}
	}
	return card
}

func (c Card) TwoSided() bool {
	return c.Back != nil
}

func (c Card) String() string {
	return c.Name
}
