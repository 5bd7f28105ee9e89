package sheet

import (
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

// edges is the list of cut positions along one axis and the gaps between
// consecutive cards, both ordered from lower to higher coordinates.
type edges struct {
	cuts  []float64
	gaps  [][2]float64
	first float64
	last  float64
}

func (l *Layout) columnEdges() edges {
	card := l.config.CardSize.Width
	step := card + l.config.Padding

	var e edges
	for c := 0; c < l.grid.Columns; c++ {
		left := l.margin.Width + float64(c)*step
		e.cuts = append(e.cuts, left, left+card)
		if c > 0 {
			e.gaps = append(e.gaps, [2]float64{left - l.config.Padding, left})
		}
	}
	e.first = e.cuts[0]
	e.last = e.cuts[len(e.cuts)-1]
	return e
}

func (l *Layout) rowEdges() edges {
	card := l.config.CardSize.Height
	step := card + l.config.Padding
	top := l.config.PageSize.Height - l.margin.Height

	// Walk rows from the bottom one up so positions grow like columns do.
	var e edges
	for r := l.grid.Rows - 1; r >= 0; r-- {
		bottom := top - float64(r)*step - card
		e.cuts = append(e.cuts, bottom, bottom+card)
		if r < l.grid.Rows-1 {
			e.gaps = append(e.gaps, [2]float64{bottom - l.config.Padding, bottom})
		}
	}
	e.first = e.cuts[0]
	e.last = e.cuts[len(e.cuts)-1]
	return e
}

// marksAlong returns the segments along one cut line, from border to the
// opposite border, skipping the stretches covered by cards. Interior gaps
// only get a mark when it keeps clear of both cards.
func (l *Layout) marksAlong(across edges, low, high float64, interior bool) [][2]float64 {
	pad := l.config.CropMarksPadding

	var segments [][2]float64
	if start, end := low, across.first-pad; end > start {
		segments = append(segments, [2]float64{start, end})
	}
	if interior {
		for _, gap := range across.gaps {
			segments = append(segments, [2]float64{gap[0] + pad, gap[1] - pad})
		}
	}
	if start, end := across.last+pad, high; end > start {
		segments = append(segments, [2]float64{start, end})
	}
	return segments
}

func (l *Layout) computeCropMarks() measure.Lines {
	page := l.config.PageSize
	border := l.config.PrintMargin
	interior := 2*l.config.CropMarksPadding < l.config.Padding

	columns := l.columnEdges()
	rows := l.rowEdges()

	var lines measure.Lines

	// Vertical cut lines run between rows.
	for _, x := range columns.cuts {
		for _, s := range l.marksAlong(rows, border, page.Height-border, interior) {
			lines = append(lines, measure.Line{
				A: measure.Point{X: x, Y: s[0]},
				B: measure.Point{X: x, Y: s[1]},
			})
		}
	}

	// Horizontal cut lines run between columns.
	for _, y := range rows.cuts {
		for _, s := range l.marksAlong(columns, border, page.Width-border, interior) {
			lines = append(lines, measure.Line{
				A: measure.Point{X: s[0], Y: y},
				B: measure.Point{X: s[1], Y: y},
			})
		}
	}

	return lines.Unique()
}
