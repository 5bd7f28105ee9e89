package render

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/kpauljoseph/cartuli/pkg/measure"
)

const (
	DefaultMarkWidth              = 0.5 * measure.PT
	DefaultRegistrationMarkMargin = 0.5 * measure.MM
)

type circle struct {
	Center measure.Point
	Radius float64
}

type wedge struct {
	Center     measure.Point
	Radius     float64
	Start, End float64
}

// registrationMark is the shape of a registration target centred at the
// origin, in millimetres with the y axis pointing up.
type registrationMark struct {
	Size       float64
	Background float64
	Lines      measure.Lines
	Circles    []circle
	Wedges     []wedge
}

func newRegistrationMark(size, margin float64) registrationMark {
	half := size / 2
	tip := size / 5
	origin := measure.Point{}

	m := registrationMark{
		Size:       size,
		Background: half + margin,
	}

	// Cross with a short perpendicular bar at each end.
	m.Lines = append(m.Lines,
		measure.Line{A: measure.Point{X: -half, Y: 0}, B: measure.Point{X: half, Y: 0}},
		measure.Line{A: measure.Point{X: 0, Y: -half}, B: measure.Point{X: 0, Y: half}},
	)
	for _, angle := range []float64{0, 90, 180, 270} {
		bar := measure.Line{
			A: measure.Point{X: half, Y: -tip / 2},
			B: measure.Point{X: half, Y: tip / 2},
		}
		rad := gg.Radians(angle)
		m.Lines = append(m.Lines, measure.Line{A: bar.A.Rotate(rad, origin), B: bar.B.Rotate(rad, origin)})
	}

	// Diagonal cross inscribed in the mark.
	radius := measure.Point{X: half, Y: 0}
	diagonal := func(from, to float64) measure.Line {
		return measure.Line{
			A: radius.Rotate(gg.Radians(from), origin),
			B: radius.Rotate(gg.Radians(to), origin),
		}
	}
	m.Lines = append(m.Lines, diagonal(45, 225), diagonal(135, 315))

	outer := half / 1.6
	inner := outer / 1.6
	m.Circles = []circle{{Radius: outer}, {Radius: inner}}
	m.Wedges = []wedge{
		{Radius: inner, Start: 0, End: math.Pi / 2},
		{Radius: inner, Start: math.Pi, End: 3 * math.Pi / 2},
	}

	return m
}

// pageCanvas converts page millimetres with a bottom left origin to the
// top left pixel space of a gg context.
type pageCanvas struct {
	dc     *gg.Context
	page   measure.Size
	scale  float64
	stroke float64
}

func (c *pageCanvas) x(mm float64) float64 {
	return mm * c.scale
}

func (c *pageCanvas) y(mm float64) float64 {
	return (c.page.Height - mm) * c.scale
}

func (c *pageCanvas) drawCropMarks(lines measure.Lines) {
	c.dc.SetColor(markColor)
	c.dc.SetLineWidth(c.stroke * c.scale)
	for _, l := range lines {
		c.dc.DrawLine(c.x(l.A.X), c.y(l.A.Y), c.x(l.B.X), c.y(l.B.Y))
		c.dc.Stroke()
	}
}

func (c *pageCanvas) drawRegistrationMark(m registrationMark, center measure.Point) {
	dc := c.dc
	dc.Push()
	defer dc.Pop()

	dc.Translate(c.x(center.X), c.y(center.Y))
	dc.Scale(c.scale, -c.scale)

	dc.SetColor(backgroundColor)
	dc.DrawRectangle(-m.Background, -m.Background, 2*m.Background, 2*m.Background)
	dc.Fill()

	dc.SetColor(markColor)
	dc.SetLineWidth(c.stroke * c.scale)
	for _, l := range m.Lines {
		dc.DrawLine(l.A.X, l.A.Y, l.B.X, l.B.Y)
		dc.Stroke()
	}
	for _, circle := range m.Circles {
		dc.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		dc.Stroke()
	}
	for _, w := range m.Wedges {
		dc.MoveTo(w.Center.X, w.Center.Y)
		dc.DrawArc(w.Center.X, w.Center.Y, w.Radius, w.Start, w.End)
		dc.ClosePath()
		dc.Fill()
	}
}
