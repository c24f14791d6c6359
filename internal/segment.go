package internal

import (
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

type Segment struct {
	Start Point
	End   Point
}

var _ Curve = Segment{}

func NewSegment(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment %v → %v", s.Start, s.End)
}

func (Segment) Kind() Kind          { return SegmentKind }
func (s Segment) StartPoint() Point { return s.Start }
func (s Segment) EndPoint() Point   { return s.End }

func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

func (s Segment) Reverse() Curve {
	return Segment{Start: s.End, End: s.Start}
}

func (s Segment) TrimFrom(p Point) (Curve, bool) {
	if p.Equal(s.End) || !s.ContainsPoint(p) {
		return nil, false
	}
	if p.Equal(s.Start) {
		p = s.Start
	}
	return Segment{Start: p, End: s.End}, true
}

func (s Segment) Trim(p1, p2 Point) (Curve, bool) {
	if p1.Equal(p2) || !s.ContainsPoint(p1) || !s.ContainsPoint(p2) {
		return nil, false
	}
	// Snap to the original endpoints so that trimmed pieces still chain exactly
	p1 = s.snap(p1)
	p2 = s.snap(p2)

	trimmed := Segment{Start: p1, End: p2}
	if s.PositiveDirection().Sub(trimmed.PositiveDirection()).Magnitude() > flipThreshold {
		return nil, false
	}
	return trimmed, true
}

func (s Segment) snap(p Point) Point {
	if p.Equal(s.Start) {
		return s.Start
	}
	if p.Equal(s.End) {
		return s.End
	}
	return p
}

// The offset direction is the direction of travel rotated clockwise, so a
// positive distance moves a counterclockwise loop outwards.
func (s Segment) Offset(d float64) Curve {
	normal := s.Start.To(s.End).Cross(up).Normalize()
	return Segment{
		Start: s.Start.Translate(normal, d),
		End:   s.End.Translate(normal, d),
	}
}

func (s Segment) PositiveDirection() Vector {
	return s.Start.To(s.End).Normalize()
}

func (s Segment) NegativeDirection() Vector {
	return s.End.To(s.Start).Normalize()
}

func (s Segment) Tangent(_ Point) Vector {
	return s.PositiveDirection()
}

// A point is on the segment when it barely lengthens the path between the
// endpoints.
func (s Segment) ContainsPoint(p Point) bool {
	return math.Abs(s.Length()-s.Start.DistanceTo(p)-p.DistanceTo(s.End)) <= EP
}

func (s Segment) Distance(p Point) (float64, Point) {
	direction := s.PositiveDirection()
	if direction == (Vector{}) {
		return s.Start.DistanceTo(p), s.Start
	}
	v := s.Start.To(p)
	closest := s.Start.Translate(direction, v.Dot(direction))
	return math.Abs(direction.Cross(v).Z), closest
}

func (s Segment) PositiveDelta(p Point) float64 {
	if !s.ContainsPoint(p) {
		return -1
	}
	return s.Start.DistanceTo(p)
}

func (s Segment) NegativeDelta(p Point) float64 {
	if !s.ContainsPoint(p) {
		return -1
	}
	return s.End.DistanceTo(p)
}

func (Segment) IsConvex() bool {
	return true
}

func (s Segment) Equal(other Curve) bool {
	o, ok := other.(Segment)
	return ok && s.Start.Equal(o.Start) && s.End.Equal(o.End)
}

func (s Segment) Bounds() rtree.Box {
	return boxAround(s.Start, s.End)
}

func (s Segment) areaTerm() float64 {
	return (s.Start.X*s.End.Y - s.End.X*s.Start.Y) / 2
}
