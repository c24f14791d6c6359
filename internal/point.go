package internal

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Points are equal when both coordinates agree within EP.
func (p Point) Equal(o Point) bool {
	return math.Abs(o.X-p.X) < EP && math.Abs(o.Y-p.Y) < EP
}

func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Direction from p to o in degrees, in [0, 360).
func (p Point) AngleTo(o Point) float64 {
	return normalizeAngle(radToDeg(math.Atan2(o.Y-p.Y, o.X-p.X)))
}

// Vector from p to o.
func (p Point) To(o Point) Vector {
	return Vector{X: o.X - p.X, Y: o.Y - p.Y}
}

func (p Point) Translate(v Vector, scale float64) Point {
	return Point{X: p.X + v.X*scale, Y: p.Y + v.Y*scale}
}

func (p Point) Midpoint(o Point) Point {
	return Point{X: (p.X + o.X) / 2, Y: (p.Y + o.Y) / 2}
}

// Point at the given angle (degrees) on the circle around p.
func (p Point) Polar(radius, angle float64) Point {
	sin, cos := math.Sincos(degToRad(angle))
	return Point{X: p.X + radius*cos, Y: p.Y + radius*sin}
}
