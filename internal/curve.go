package internal

import "github.com/peterstace/simplefeatures/rtree"

// Kind tags match the shape kinds written to disk.
type Kind int32

const (
	SegmentKind Kind = 1
	ArcKind     Kind = 5
)

func (k Kind) String() string {
	switch k {
	case SegmentKind:
		return "segment"
	case ArcKind:
		return "arc"
	}
	return "unknown"
}

// Curves are the atomic pieces of a loop. The set of curve types is closed:
// Segment and Arc are the only implementations, and every operation that needs
// to know which one it has uses an exhaustive type switch.
//
// Curves are values. Operations that would change a curve return a new one,
// and trimming operations report failure with a false second result.
type Curve interface {
	Kind() Kind
	StartPoint() Point
	EndPoint() Point

	// Trim the curve so that it starts at p and keeps its end. Fails if p is the
	// end point, or if p is not on the curve.
	TrimFrom(p Point) (Curve, bool)
	// Trim the curve to the piece between p1 and p2, in the curve's own travel
	// direction. Fails if either point is off the curve, or if p2 does not come
	// after p1.
	Trim(p1, p2 Point) (Curve, bool)
	// Displace the curve perpendicular to itself. Positive distances move away
	// from the solid side of a positive loop.
	Offset(d float64) Curve
	Reverse() Curve

	// Unit tangent leaving the start point.
	PositiveDirection() Vector
	// Unit tangent leaving the end point, pointing back along the curve.
	NegativeDirection() Vector
	// Unit tangent in travel direction at a point on the curve.
	Tangent(p Point) Vector

	ContainsPoint(p Point) bool
	// Distance from p to the curve's infinite extension (the full line or
	// circle), and the nearest point on it.
	Distance(p Point) (float64, Point)
	// Length along the curve from the start (or end) to p, or -1 if p is not on
	// the curve.
	PositiveDelta(p Point) float64
	NegativeDelta(p Point) float64

	IsConvex() bool
	Equal(other Curve) bool
	Bounds() rtree.Box

	// Contribution of the curve to the signed area of the loop it belongs to.
	areaTerm() float64

	// This is a dummy method that closes the set of Curve implementations.
	curveTypeHint()
}

func (Segment) curveTypeHint() {}
func (Arc) curveTypeHint()     {}

// Does p coincide with either end of the curve?
func MatchesEndpoint(c Curve, p Point) bool {
	return c.StartPoint().Equal(p) || c.EndPoint().Equal(p)
}

// Orient the curve so that it starts at p. Reports false, leaving the curve
// alone, if p is not one of its endpoints.
func NormalizeDirection(c Curve, p Point) (Curve, bool) {
	if c.StartPoint().Equal(p) {
		return c, true
	}
	if c.EndPoint().Equal(p) {
		return c.Reverse(), true
	}
	return c, false
}

// Would moving the curve's endpoints to start and end reverse its chord? This
// happens when an offset shrinks a curve past zero length.
func isFlipped(c Curve, start, end Point) bool {
	v1 := c.StartPoint().To(c.EndPoint()).Normalize()
	v2 := start.To(end).Normalize()
	return v1.Sub(v2).Magnitude() > flipThreshold
}

func boxAround(points ...Point) rtree.Box {
	box := rtree.Box{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		box = extendBox(box, rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
	}
	return box
}

func extendBox(a, b rtree.Box) rtree.Box {
	if b.MinX < a.MinX {
		a.MinX = b.MinX
	}
	if b.MinY < a.MinY {
		a.MinY = b.MinY
	}
	if b.MaxX > a.MaxX {
		a.MaxX = b.MaxX
	}
	if b.MaxY > a.MaxY {
		a.MaxY = b.MaxY
	}
	return a
}

// Grow a box by the linear tolerance, so that touching curves still overlap.
func padBox(b rtree.Box) rtree.Box {
	return rtree.Box{MinX: b.MinX - EP, MinY: b.MinY - EP, MaxX: b.MaxX + EP, MaxY: b.MaxY + EP}
}
