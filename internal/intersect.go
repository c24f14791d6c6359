package internal

import (
	"fmt"
	"math"
)

type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	// The curves meet at one or two isolated points.
	Crossing
	// The curves lie on the same line or circle, so they share infinitely many
	// points.
	Coincident
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case Crossing:
		return "crossing"
	case Coincident:
		return "coincident"
	}
	return fmt.Sprintf("IntersectionKind(%d)", int(k))
}

// Where two curves meet. For a Crossing, Valid marks which of the two Points
// hold a usable result; the others are zero.
type Intersection struct {
	Kind   IntersectionKind
	Points [2]Point
	Valid  [2]bool
}

// Pick the valid point closest to p.
func (x Intersection) NearestTo(p Point) (Point, bool) {
	var best Point
	found := false
	bestDistance := math.Inf(1)
	for i, q := range x.Points {
		if !x.Valid[i] {
			continue
		}
		if d := q.DistanceTo(p); d < bestDistance {
			best, bestDistance, found = q, d, true
		}
	}
	return best, found
}

// Determinants smaller than this mean the lines are parallel.
const parallelDeterminant = 1e-10

// Intersect the full extensions of two curves, ignoring their bounds.
func sharedPoints(a, b Curve) Intersection {
	switch a := a.(type) {
	case Segment:
		switch b := b.(type) {
		case Segment:
			return lineLineIntersection(a, b)
		case Arc:
			return lineCircleIntersection(a, b)
		}
	case Arc:
		switch b := b.(type) {
		case Segment:
			return lineCircleIntersection(b, a)
		case Arc:
			return circleCircleIntersection(a, b)
		}
	}
	fatalf("cannot intersect %v with %v", a, b)
	return Intersection{}
}

func lineLineIntersection(a, b Segment) Intersection {
	d1 := a.PositiveDirection()
	d2 := b.PositiveDirection()
	det := d1.Cross(d2).Z
	if math.Abs(det) < parallelDeterminant {
		if distance, _ := a.Distance(b.Start); distance < EP {
			return Intersection{Kind: Coincident}
		}
		return Intersection{}
	}
	t := a.Start.To(b.Start).Cross(d2).Z / det
	return Intersection{
		Kind:   Crossing,
		Points: [2]Point{a.Start.Translate(d1, t)},
		Valid:  [2]bool{true},
	}
}

func lineCircleIntersection(s Segment, a Arc) Intersection {
	distance, foot := s.Distance(a.Center)
	if distance-a.Radius > EP {
		return Intersection{}
	}
	distance = math.Min(distance, a.Radius)
	h := math.Sqrt(a.Radius*a.Radius - distance*distance)
	direction := s.PositiveDirection()
	return Intersection{
		Kind:   Crossing,
		Points: [2]Point{foot.Translate(direction, h), foot.Translate(direction, -h)},
		Valid:  [2]bool{true, true},
	}
}

func circleCircleIntersection(a, b Arc) Intersection {
	d := a.Center.DistanceTo(b.Center)
	if d < EP {
		if math.Abs(a.Radius-b.Radius) < EP {
			return Intersection{Kind: Coincident}
		}
		return Intersection{}
	}
	if d-a.Radius-b.Radius > EP || a.Radius-d-b.Radius > EP || b.Radius-d-a.Radius > EP {
		return Intersection{}
	}
	d = math.Min(d, a.Radius+b.Radius)

	// Law of cosines for the angle at a's center between the line of centers
	// and the intersection points
	cos := (a.Radius*a.Radius + d*d - b.Radius*b.Radius) / (2 * a.Radius * d)
	spread := radToDeg(math.Acos(math.Max(-1, math.Min(1, cos))))
	base := a.Center.AngleTo(b.Center)
	return Intersection{
		Kind: Crossing,
		Points: [2]Point{
			a.Center.Polar(a.Radius, base+spread),
			a.Center.Polar(a.Radius, base-spread),
		},
		Valid: [2]bool{true, true},
	}
}

// Intersect two bounded curves. Each crossing point is kept only if it lies on
// both curves, and coincident curves are only reported when they overlap.
func Conflict(a, b Curve) Intersection {
	x := sharedPoints(a, b)
	switch x.Kind {
	case Crossing:
		for i, p := range x.Points {
			x.Valid[i] = x.Valid[i] && a.ContainsPoint(p) && b.ContainsPoint(p)
			if !x.Valid[i] {
				x.Points[i] = Point{}
			}
		}
		if !x.Valid[0] && !x.Valid[1] {
			return Intersection{}
		}
	case Coincident:
		if !overlaps(a, b) {
			return Intersection{}
		}
	}
	return x
}

func overlaps(a, b Curve) bool {
	return a.ContainsPoint(b.StartPoint()) || a.ContainsPoint(b.EndPoint()) ||
		b.ContainsPoint(a.StartPoint()) || b.ContainsPoint(a.EndPoint())
}
