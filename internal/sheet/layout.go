package sheet

import (
	"fmt"

	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// Layout is the computed geometry of one sheet page. It is immutable and
// identical for every page of a sheet.
type Layout struct {
	config    Config
	grid      Grid
	margin    measure.Size
	cropMarks measure.Lines
}

// NewLayout computes the page grid and crop marks for c.
func NewLayout(c Config) (*Layout, error) {
	grid, margin, err := CardsPerPage(c)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		config: c,
		grid:   grid,
		margin: margin,
	}
	l.cropMarks = l.computeCropMarks()
	return l, nil
}

func (l *Layout) Config() Config {
	return l.config
}

// CardsPerPage is the grid shape.
func (l *Layout) CardsPerPage() Grid {
	return l.grid
}

func (l *Layout) NumCardsPerPage() int {
	return l.grid.Cells()
}

// Margin is the distance from the left and top page edges to the grid.
func (l *Layout) Margin() measure.Size {
	return l.margin
}

// CardCoordinates returns the grid cell of the n-th card (1 based) within
// its page. Back faces use mirrored columns so that, once the paper is
// flipped around its vertical axis, each back lands behind its front.
func (l *Layout) CardCoordinates(n int, back bool) (measure.Coordinates, error) {
	if n < 1 {
		return measure.Coordinates{}, fmt.Errorf("%w: card number %d, first card is 1", ErrOutOfBounds, n)
	}

	index := (n - 1) % l.grid.Cells()
	c := measure.Coordinates{
		Column: index % l.grid.Columns,
		Row:    index / l.grid.Columns,
	}
	if back {
		c = l.Mirror(c)
	}
	return c, nil
}

// Mirror flips the column of c. Rows are kept.
func (l *Layout) Mirror(c measure.Coordinates) measure.Coordinates {
	return measure.Coordinates{
		Column: l.grid.Columns - 1 - c.Column,
		Row:    c.Row,
	}
}

// CardPosition returns the lower left corner of the card at c. Rows are
// counted from the top of the page but positions use a bottom left origin.
func (l *Layout) CardPosition(c measure.Coordinates) (measure.Point, error) {
	if c.Column < 0 || c.Row < 0 || c.Column >= l.grid.Columns || c.Row >= l.grid.Rows {
		return measure.Point{}, fmt.Errorf("%w: %s outside %s grid", ErrOutOfBounds, c, l.grid)
	}

	card := l.config.CardSize
	padding := l.config.Padding
	col, row := float64(c.Column), float64(c.Row)

	return measure.Point{
		X: l.margin.Width + col*(card.Width+padding),
		Y: l.config.PageSize.Height - l.margin.Height - (row+1)*card.Height - row*padding,
	}, nil
}

// CardPage returns the 1 based page of the n-th card.
func (l *Layout) CardPage(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: card number %d, first card is 1", ErrOutOfBounds, n)
	}
	return (n-1)/l.grid.Cells() + 1, nil
}

// CropMarks returns the crop mark segments shared by every page.
func (l *Layout) CropMarks() measure.Lines {
	return append(measure.Lines(nil), l.cropMarks...)
}
