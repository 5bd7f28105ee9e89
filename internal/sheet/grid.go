package sheet

import (
	"fmt"
	"math"

	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// Grid is the number of card columns and rows in a page.
type Grid struct {
	Columns int
	Rows    int
}

// Cells is the number of cards in one page.
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Config is the page geometry of a sheet. A positive PrintMargin selects the
// print margin policy: the grid is centred and Margin is ignored. Otherwise
// Margin is used as the left and top margin.
type Config struct {
	PageSize         measure.Size
	CardSize         measure.Size
	Padding          float64
	Margin           float64
	PrintMargin      float64
	CropMarksPadding float64
}

func (c Config) validate() error {
	switch {
	case c.PageSize.Width <= 0 || c.PageSize.Height <= 0:
		return fmt.Errorf("%w: page size %s must be positive", ErrConfiguration, c.PageSize)
	case c.CardSize.Width <= 0 || c.CardSize.Height <= 0:
		return fmt.Errorf("%w: card size %s must be positive", ErrConfiguration, c.CardSize)
	case c.Padding < 0:
		return fmt.Errorf("%w: negative padding %g", ErrConfiguration, c.Padding)
	case c.Margin < 0:
		return fmt.Errorf("%w: negative margin %g", ErrConfiguration, c.Margin)
	case c.PrintMargin < 0:
		return fmt.Errorf("%w: negative print margin %g", ErrConfiguration, c.PrintMargin)
	case c.CropMarksPadding < 0:
		return fmt.Errorf("%w: negative crop marks padding %g", ErrConfiguration, c.CropMarksPadding)
	}
	return nil
}

// CardsPerPage returns how many cards fit in the page and the left and top
// margins that place the grid.
func CardsPerPage(c Config) (Grid, measure.Size, error) {
	if err := c.validate(); err != nil {
		return Grid{}, measure.Size{}, err
	}

	border := c.Margin
	if c.PrintMargin > 0 {
		border = c.PrintMargin
	}

	grid := Grid{
		Columns: fit(c.PageSize.Width-2*border, c.CardSize.Width, c.Padding),
		Rows:    fit(c.PageSize.Height-2*border, c.CardSize.Height, c.Padding),
	}
	if grid.Columns < 1 || grid.Rows < 1 {
		return Grid{}, measure.Size{}, fmt.Errorf("%w: %s card in %s page with %g margin and %g padding",
			ErrLayout, c.CardSize, c.PageSize, border, c.Padding)
	}

	margin := measure.Size{Width: c.Margin, Height: c.Margin}
	if c.PrintMargin > 0 {
		margin = measure.Size{
			Width:  centre(c.PageSize.Width, c.CardSize.Width, c.Padding, grid.Columns),
			Height: centre(c.PageSize.Height, c.CardSize.Height, c.Padding, grid.Rows),
		}
	}

	return grid, margin, nil
}

// fit counts the cards of length card that fit in available space when
// consecutive cards are separated by padding.
func fit(available, card, padding float64) int {
	if available+measure.Tolerance < card {
		return 0
	}
	return int(math.Floor((available + padding + measure.Tolerance) / (card + padding)))
}

func centre(axis, card, padding float64, count int) float64 {
	n := float64(count)
	return (axis - n*card - (n-1)*padding) / 2
}
