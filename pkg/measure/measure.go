// Package measure holds the physical length types used to lay out card sheets.
//
// Every length is a float64 in millimetres. Values coming from floating point
// arithmetic are compared with an absolute tolerance, never with ==.
package measure

import (
	"fmt"
	"math"
)

// Length units expressed in millimetres.
const (
	MM   = 1.0
	CM   = 10 * MM
	Inch = 25.4 * MM
	PT   = Inch / 72
)

// Tolerance is the absolute difference under which two lengths are equal.
const Tolerance = 0.001 * MM

// IsClose reports whether a and b differ by no more than Tolerance.
func IsClose(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Size is a width and height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("(%g, %g)", s.Width, s.Height)
}

func (s Size) Add(o Size) Size {
	return Size{s.Width + o.Width, s.Height + o.Height}
}

func (s Size) Sub(o Size) Size {
	return Size{s.Width - o.Width, s.Height - o.Height}
}

// Grow adds v to both dimensions.
func (s Size) Grow(v float64) Size {
	return Size{s.Width + v, s.Height + v}
}

func (s Size) Mul(f float64) Size {
	return Size{s.Width * f, s.Height * f}
}

func (s Size) Div(f float64) Size {
	return Size{s.Width / f, s.Height / f}
}

func (s Size) Equal(o Size) bool {
	return IsClose(s.Width, o.Width) && IsClose(s.Height, o.Height)
}

// IsZero reports whether s is the zero value, used as "not set".
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Point is a position on a page.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Rotate turns p counterclockwise by angle radians around origin.
func (p Point) Rotate(angle float64, origin Point) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + cos*dx - sin*dy,
		Y: origin.Y + sin*dx + cos*dy,
	}
}

func (p Point) Equal(o Point) bool {
	return IsClose(p.X, o.X) && IsClose(p.Y, o.Y)
}

// Coordinates addresses a cell of the card grid. Both indices are zero based.
type Coordinates struct {
	Column int
	Row    int
}

func (c Coordinates) String() string {
	return fmt.Sprintf("[%d, %d]", c.Column, c.Row)
}

// Line is a segment between two points. Lines are undirected: a line
// equals its reverse.
type Line struct {
	A Point
	B Point
}

func (l Line) String() string {
	return fmt.Sprintf("%s <-> %s", l.A, l.B)
}

func (l Line) Equal(o Line) bool {
	return (l.A.Equal(o.A) && l.B.Equal(o.B)) ||
		(l.A.Equal(o.B) && l.B.Equal(o.A))
}

func (l Line) Reverse() Line {
	return Line{A: l.B, B: l.A}
}

func (l Line) Length() float64 {
	return math.Hypot(l.B.X-l.A.X, l.B.Y-l.A.Y)
}

// Lines is an ordered set of undirected segments.
type Lines []Line

// Contains reports whether an equal line is already in ls.
func (ls Lines) Contains(l Line) bool {
	for _, other := range ls {
		if other.Equal(l) {
			return true
		}
	}
	return false
}

// Unique returns ls without repeated lines, keeping the first occurrence.
func (ls Lines) Unique() Lines {
	out := make(Lines, 0, len(ls))
	for _, l := range ls {
		if !out.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}
