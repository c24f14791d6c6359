package internal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/contour/internal/dbg"
	"github.com/peterstace/simplefeatures/rtree"
)

// A closed contour. When Completed, every curve ends where the next one
// (cyclically) starts, every endpoint is shared by exactly two curves, and no
// curve crosses another. A Positive loop runs counterclockwise with its solid
// on the left; negative loops are holes.
//
// Completed and Positive are derived state. Only Update changes them.
type Loop struct {
	Curves    []Curve
	Completed bool
	Positive  bool
}

// Create a loop from a list of curves in any order and update it.
func NewLoop(curves ...Curve) Loop {
	l := Loop{Curves: append([]Curve(nil), curves...)}
	l.Update()
	return l
}

func (l *Loop) Len() int {
	return len(l.Curves)
}

func (l *Loop) Clone() Loop {
	clone := *l
	clone.Curves = append([]Curve(nil), l.Curves...)
	return clone
}

func (l *Loop) Clear() {
	l.Curves = nil
	l.Completed = false
	l.Positive = false
}

func (l *Loop) String() string {
	var parts []string
	for _, c := range l.Curves {
		parts = append(parts, fmt.Sprintf("  %v", c))
	}
	return fmt.Sprintf("Loop %s {\n%s\n}", l.DbgName(), strings.Join(parts, "\n"))
}

func (l *Loop) DbgName() string {
	name := dbg.Name(l)
	if !l.Completed {
		name = aurora.Yellow(name).String()
	} else if l.Positive {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Red(name).String()
	}
	return name
}

// Loops log under their debug name. The name is only generated once a handler
// actually takes the record.
func (l *Loop) LogValue() slog.Value {
	return slog.StringValue(l.DbgName())
}

// Index of the first curve with an endpoint that is not shared by exactly one
// other curve, or -1 if every endpoint is properly paired. Such a curve marks
// an open chain or a branch.
func (l *Loop) FrozenTerm() int {
	for i, c := range l.Curves {
		startMatches, endMatches := 0, 0
		for j, other := range l.Curves {
			if i == j {
				continue
			}
			if MatchesEndpoint(other, c.StartPoint()) {
				startMatches++
			}
			if MatchesEndpoint(other, c.EndPoint()) {
				endMatches++
			}
		}
		if startMatches != 1 || endMatches != 1 {
			return i
		}
	}
	return -1
}

// Index of the first curve that crosses another curve of the loop, or -1.
func (l *Loop) FrozenCurve() int {
	for i, c := range l.Curves {
		if _, _, ok := l.SelfIntersection(i, c); ok {
			return i
		}
	}
	return -1
}

func (l *Loop) IsSorted() bool {
	for i, c := range l.Curves {
		next := l.Curves[CircularIndex(i+1, len(l.Curves))]
		if !c.EndPoint().Equal(next.StartPoint()) {
			return false
		}
	}
	return true
}

// Chain the curves into traversal order, reversing curves as needed so each
// starts where the previous one ended. Fails, leaving the loop alone, when the
// curves do not form exactly one closed chain.
func (l *Loop) Sort() bool {
	n := len(l.Curves)
	if n < 2 || l.FrozenTerm() != -1 {
		return false
	}

	used := make([]bool, n)
	used[0] = true
	sorted := []Curve{l.Curves[0]}
	at := l.Curves[0].EndPoint()
	for len(sorted) < n {
		found := false
		for i, c := range l.Curves {
			if used[i] {
				continue
			}
			if oriented, ok := NormalizeDirection(c, at); ok {
				used[i] = true
				sorted = append(sorted, oriented)
				at = oriented.EndPoint()
				found = true
				break
			}
		}
		if !found {
			// The first chain closed before using every curve
			return false
		}
	}
	if !at.Equal(sorted[0].StartPoint()) {
		return false
	}
	l.Curves = sorted
	return true
}

// Orientation oracle. From every vertex, cast a ray into the region on the left
// of travel and look at how the loop crosses it at the nearest hit. If the
// left side is the inside at every vertex, the loop is positive.
//
// This deliberately avoids the signed area, whose sign is unreliable for loops
// made of nearly degenerate arcs.
func (l *Loop) IsPositive() bool {
	n := len(l.Curves)
	if n == 0 {
		return false
	}
	for i, c := range l.Curves {
		vertex := c.StartPoint()
		outgoing := c.PositiveDirection()
		backward := l.Curves[CircularIndex(i-1, n)].NegativeDirection()
		incoming := backward.Negate()

		// The bisector of the corner points into the smaller angle, which is the
		// left side only on a left turn.
		bisector := backward.Add(outgoing).Normalize()
		turn := incoming.Cross(outgoing).Z
		if turn == 0 {
			bisector = up.Cross(incoming)
		} else if turn < 0 {
			bisector = bisector.Negate()
		}
		bisector = bisector.Normalize()

		ray := Segment{Start: vertex, End: vertex.Translate(bisector, farDistance)}
		hit, index, ok := l.nearestRayHit(ray)
		if !ok {
			return false
		}
		tangent := l.Curves[index].Tangent(hit)
		if tangent.Cross(hit.To(vertex).Normalize()).Z < 0 {
			return false
		}
	}
	return true
}

// Nearest crossing of a ray with the loop, measured from the ray's origin and
// ignoring the origin itself.
func (l *Loop) nearestRayHit(ray Segment) (Point, int, bool) {
	var hit Point
	index := -1
	nearest := farDistance
	for j, c := range l.Curves {
		x := Conflict(ray, c)
		if x.Kind != Crossing {
			continue
		}
		for k, p := range x.Points {
			if !x.Valid[k] || p.Equal(ray.Start) {
				continue
			}
			if d := ray.Start.DistanceTo(p); d < nearest {
				hit, nearest, index = p, d, j
			}
		}
	}
	return hit, index, index != -1
}

// Reverse the traversal, turning a positive loop negative and vice versa.
func (l *Loop) TurnOut() {
	n := len(l.Curves)
	turned := make([]Curve, n)
	for i, c := range l.Curves {
		turned[n-1-i] = c.Reverse()
	}
	l.Curves = turned
}

func (l *Loop) MakePositive() {
	if !l.IsPositive() {
		l.TurnOut()
	}
	l.Positive = true
}

// Is p on the solid side of the loop? A ray is cast to the right of p, and the
// crossing at the nearest hit decides.
func (l *Loop) IsInsidePoint(p Point) bool {
	ray := Segment{Start: p, End: Point{X: p.X + farDistance, Y: p.Y}}
	hit, index, ok := l.SelfIntersection(-1, ray)
	if !ok {
		return false
	}
	return l.IsInsideAt(Segment{Start: p, End: hit}, index)
}

// Does the probe arrive at its end point from the solid side of the curve at
// index? The probe must end on that curve.
func (l *Loop) IsInsideAt(probe Curve, index int) bool {
	tangent := l.Curves[index].Tangent(probe.EndPoint())
	return tangent.Cross(probe.NegativeDirection()).Z >= 0
}

// Is every vertex of other on the solid side of this loop?
func (l *Loop) IsInsideLoop(other *Loop) bool {
	for _, c := range other.Curves {
		if !l.IsInsidePoint(c.StartPoint()) {
			return false
		}
	}
	return true
}

// Insert a curve before index. An index equal to the length appends.
func (l *Loop) Insert(index int, c Curve) {
	l.Curves = append(l.Curves, nil)
	copy(l.Curves[index+1:], l.Curves[index:])
	l.Curves[index] = c
}

// Keep only the curves whose flag is set.
func (l *Loop) compact(keep []bool) {
	kept := l.Curves[:0]
	for i, c := range l.Curves {
		if keep[i] {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(l.Curves); i++ {
		l.Curves[i] = nil
	}
	l.Curves = kept
}

// Find where the probe first crosses a curve of the loop, skipping the curve at
// exclude (-1 skips nothing). Crossings at the probe's own endpoints are
// ignored, and "first" is measured along the probe from its start.
func (l *Loop) SelfIntersection(exclude int, probe Curve) (Point, int, bool) {
	var hit Point
	index := -1
	nearest := 0.0
	for i, c := range l.Curves {
		if i == exclude {
			continue
		}
		x := Conflict(probe, c)
		if x.Kind != Crossing {
			continue
		}
		for k, p := range x.Points {
			if !x.Valid[k] || p.Equal(probe.StartPoint()) || p.Equal(probe.EndPoint()) {
				continue
			}
			if d := probe.PositiveDelta(p); index == -1 || d < nearest {
				hit, nearest, index = p, d, i
			}
		}
	}
	return hit, index, index != -1
}

// Recompute Completed and Positive. An unsorted loop is chained and turned
// positive; a sorted loop keeps its direction and has its orientation measured.
// The loop completes only if it is a single closed chain that never crosses
// itself.
func (l *Loop) Update() {
	l.Completed = false
	if len(l.Curves) < 2 {
		l.Positive = false
		return
	}

	if !l.IsSorted() {
		if !l.Sort() {
			l.Positive = false
			return
		}
		l.MakePositive()
	} else {
		// A chain can be sorted and still pass through one point twice
		if l.FrozenTerm() != -1 {
			l.Positive = false
			return
		}
		l.Positive = l.IsPositive()
	}

	if l.FrozenCurve() != -1 {
		return
	}
	l.Completed = true
}

// Signed enclosed area, positive for counterclockwise loops. Only meaningful
// for sorted loops.
func (l *Loop) Area() float64 {
	var area float64
	for _, c := range l.Curves {
		area += c.areaTerm()
	}
	return area
}

func (l *Loop) Bounds() rtree.Box {
	if len(l.Curves) == 0 {
		return rtree.Box{}
	}
	box := l.Curves[0].Bounds()
	for _, c := range l.Curves[1:] {
		box = extendBox(box, c.Bounds())
	}
	return box
}
