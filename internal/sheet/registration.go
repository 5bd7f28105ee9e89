package sheet

import (
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// DefaultRegistrationMarkSize is the side of the square holding a
// registration mark.
const DefaultRegistrationMarkSize = 5 * measure.MM

// RegistrationMarks returns the centres of the four registration marks of
// side size: bottom right, top right, bottom left and top left.
func (l *Layout) RegistrationMarks(size float64) [4]measure.Point {
	inset := (l.margin.Width+l.margin.Height)/2 - size/2
	if l.config.PrintMargin > 0 {
		inset = l.config.PrintMargin + size/2
	}

	page := l.config.PageSize
	return [4]measure.Point{
		{X: page.Width - inset, Y: inset},
		{X: page.Width - inset, Y: page.Height - inset},
		{X: inset, Y: inset},
		{X: inset, Y: page.Height - inset},
	}
}
