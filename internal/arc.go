package internal

import (
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// A circular arc. Angles are in degrees, measured counterclockwise from the
// positive X axis. The arc travels from StartAngle to EndAngle, decreasing if
// Clockwise is set and increasing otherwise, wrapping through 360 as needed.
type Arc struct {
	Start      Point
	End        Point
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

var _ Curve = Arc{}

// Create an arc from its circle and angles, placing the endpoints on the circle.
func NewArc(center Point, radius, startAngle, endAngle float64, clockwise bool) Arc {
	return Arc{
		Start:      center.Polar(radius, startAngle),
		End:        center.Polar(radius, endAngle),
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  clockwise,
	}
}

// Create an arc around center between two points. The radius is the mean of
// the two endpoint distances, and the endpoints are kept as given.
func NewArcThrough(center, start, end Point, clockwise bool) Arc {
	return Arc{
		Start:      start,
		End:        end,
		Center:     center,
		Radius:     (center.DistanceTo(start) + center.DistanceTo(end)) / 2,
		StartAngle: center.AngleTo(start),
		EndAngle:   center.AngleTo(end),
		Clockwise:  clockwise,
	}
}

func (a Arc) String() string {
	direction := "ccw"
	if a.Clockwise {
		direction = "cw"
	}
	return fmt.Sprintf("Arc %v → %v around %v r=%g [%g°, %g°] %s",
		a.Start, a.End, a.Center, a.Radius, a.StartAngle, a.EndAngle, direction)
}

func (Arc) Kind() Kind          { return ArcKind }
func (a Arc) StartPoint() Point { return a.Start }
func (a Arc) EndPoint() Point   { return a.End }

// Start and end angles unwrapped so that travelling between them is a plain
// increase (counterclockwise) or decrease (clockwise).
func (a Arc) absoluteAngles() (sa, ea float64) {
	sa, ea = a.StartAngle, a.EndAngle
	if a.Clockwise && sa < ea {
		sa += 360
	}
	if !a.Clockwise && sa > ea {
		ea += 360
	}
	return sa, ea
}

// Angular extent of the arc in degrees.
func (a Arc) Span() float64 {
	sa, ea := a.absoluteAngles()
	return math.Abs(ea - sa)
}

// Angular distance travelled from the start angle to reach angle, in [0, 360).
func (a Arc) travel(angle float64) float64 {
	d := angle - a.StartAngle
	if a.Clockwise {
		d = -d
	}
	return normalizeAngle(d)
}

// Position of an angle along the arc in degrees from the start. The boundary
// is inclusive on both ends, including a start angle that wraps through 360.
func (a Arc) angleOffset(angle float64) (float64, bool) {
	span := a.Span()
	t := a.travel(angle)
	if t >= 360-EPA {
		return 0, true
	}
	if t <= span+EPA {
		return math.Min(t, span), true
	}
	return 0, false
}

// Position of a point on the arc in degrees from the start, snapping the
// endpoints exactly.
func (a Arc) pointOffset(p Point) (float64, bool) {
	if p.Equal(a.Start) {
		return 0, true
	}
	if p.Equal(a.End) {
		return a.Span(), true
	}
	return a.angleOffset(a.Center.AngleTo(p))
}

// Smallest difference between two angles, wrapping through 360.
func angleDiff(a, b float64) float64 {
	d := normalizeAngle(a - b)
	return math.Min(d, 360-d)
}

func (a Arc) Reverse() Curve {
	return Arc{
		Start:      a.End,
		End:        a.Start,
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: a.EndAngle,
		EndAngle:   a.StartAngle,
		Clockwise:  !a.Clockwise,
	}
}

func (a Arc) TrimFrom(p Point) (Curve, bool) {
	if p.Equal(a.End) || !a.ContainsPoint(p) {
		return nil, false
	}
	sa := a.Center.AngleTo(p)
	if angleDiff(sa, a.EndAngle) <= EPA {
		return nil, false
	}
	if angleDiff(sa, a.StartAngle) <= EPA {
		sa = a.StartAngle
	}
	trimmed := a
	trimmed.Start = p
	trimmed.StartAngle = sa
	return trimmed, true
}

func (a Arc) Trim(p1, p2 Point) (Curve, bool) {
	if !a.ContainsPoint(p1) || !a.ContainsPoint(p2) {
		return nil, false
	}
	t1, _ := a.pointOffset(p1)
	t2, _ := a.pointOffset(p2)
	if t2-t1 <= EPA {
		return nil, false
	}

	trimmed := a
	trimmed.Start, trimmed.StartAngle = a.snap(p1)
	trimmed.End, trimmed.EndAngle = a.snap(p2)
	return trimmed, true
}

// Snap a point on the arc to the nearest original endpoint, returning it with
// its angle.
func (a Arc) snap(p Point) (Point, float64) {
	if p.Equal(a.Start) {
		return a.Start, a.StartAngle
	}
	if p.Equal(a.End) {
		return a.End, a.EndAngle
	}
	angle := a.Center.AngleTo(p)
	if angleDiff(angle, a.StartAngle) <= EPA {
		angle = a.StartAngle
	} else if angleDiff(angle, a.EndAngle) <= EPA {
		angle = a.EndAngle
	}
	return p, angle
}

// Offsetting grows or shrinks the radius. A concave arc (one that turns
// clockwise) has its solid side outside the circle, so the distance flips.
func (a Arc) Offset(d float64) Curve {
	if !a.IsConvex() {
		d = -d
	}
	return NewArc(a.Center, a.Radius+d, a.StartAngle, a.EndAngle, a.Clockwise)
}

// Probe the turning direction a tenth of the way along the arc.
func (a Arc) IsConvex() bool {
	sa, ea := a.absoluteAngles()
	sample := a.Center.Polar(a.Radius, sa+(ea-sa)/10)
	v1 := a.Start.To(sample)
	v2 := a.Start.To(a.Center)
	return v2.Cross(v1).Z <= 0
}

// Directions are chords to a sample one degree along the arc.
func (a Arc) PositiveDirection() Vector {
	sa, ea := a.absoluteAngles()
	angle := sa + 1
	if ea < sa {
		angle = sa - 1
	}
	return a.Start.To(a.Center.Polar(a.Radius, angle)).Normalize()
}

func (a Arc) NegativeDirection() Vector {
	sa, ea := a.absoluteAngles()
	angle := ea - 1
	if sa > ea {
		angle = ea + 1
	}
	return a.End.To(a.Center.Polar(a.Radius, angle)).Normalize()
}

func (a Arc) Tangent(p Point) Vector {
	step := 1.0
	if a.Clockwise {
		step = -1
	}
	angle := a.Center.AngleTo(p)
	return a.Center.Polar(a.Radius, angle).To(a.Center.Polar(a.Radius, angle+step)).Normalize()
}

func (a Arc) ContainsPoint(p Point) bool {
	if math.Abs(a.Radius-a.Center.DistanceTo(p)) > EP {
		return false
	}
	_, ok := a.angleOffset(a.Center.AngleTo(p))
	return ok
}

func (a Arc) Distance(p Point) (float64, Point) {
	d := math.Abs(a.Center.DistanceTo(p) - a.Radius)
	return d, a.Center.Polar(a.Radius, a.Center.AngleTo(p))
}

func (a Arc) PositiveDelta(p Point) float64 {
	if !a.ContainsPoint(p) {
		return -1
	}
	t, _ := a.pointOffset(p)
	return a.arcLength(t)
}

func (a Arc) NegativeDelta(p Point) float64 {
	if !a.ContainsPoint(p) {
		return -1
	}
	t, _ := a.pointOffset(p)
	return a.arcLength(a.Span() - t)
}

func (a Arc) arcLength(degrees float64) float64 {
	return 2 * math.Pi * a.Radius * degrees / 360
}

func (a Arc) Equal(other Curve) bool {
	o, ok := other.(Arc)
	if !ok {
		return false
	}
	if !a.Start.Equal(o.Start) || !a.End.Equal(o.End) || !a.Center.Equal(o.Center) {
		return false
	}
	if math.Abs(a.Radius-o.Radius) > EP {
		return false
	}
	return angleDiff(a.StartAngle, o.StartAngle) <= EPA && angleDiff(a.EndAngle, o.EndAngle) <= EPA
}

func (a Arc) Bounds() rtree.Box {
	points := []Point{a.Start, a.End}
	for _, angle := range []float64{0, 90, 180, 270} {
		if t, ok := a.angleOffset(angle); ok && t > 0 && t < a.Span() {
			points = append(points, a.Center.Polar(a.Radius, angle))
		}
	}
	return boxAround(points...)
}

func (a Arc) areaTerm() float64 {
	sweep := degToRad(a.Span())
	if a.Clockwise {
		sweep = -sweep
	}
	chord := a.Center.X*(a.End.Y-a.Start.Y) - a.Center.Y*(a.End.X-a.Start.X)
	return (chord + a.Radius*a.Radius*sweep) / 2
}
