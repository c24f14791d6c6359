package internal

import "math"

// Axis aligned rectangle spanning two opposite corners, running
// counterclockwise from the bottom left. Fails if the corners share an X or Y
// coordinate.
func Box(p1, p2 Point) (Loop, bool) {
	x0, x1 := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	y0, y1 := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	if x1-x0 < EP || y1-y0 < EP {
		return Loop{}, false
	}
	corners := []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	l := Loop{}
	for i, corner := range corners {
		l.Curves = append(l.Curves, NewSegment(corner, corners[CircularIndex(i+1, 4)]))
	}
	l.Update()
	return l, true
}

// Rectangle with quarter circle corners. The corner radius is a tenth of the
// shorter side.
func RoundedBox(p1, p2 Point) (Loop, bool) {
	x0, x1 := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	y0, y1 := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	if x1-x0 < EP || y1-y0 < EP {
		return Loop{}, false
	}
	r := math.Min(x1-x0, y1-y0) / 10

	corner := func(center Point, startAngle float64, start, end Point) Arc {
		return Arc{
			Start:      start,
			End:        end,
			Center:     center,
			Radius:     r,
			StartAngle: startAngle,
			EndAngle:   startAngle + 90,
			Clockwise:  false,
		}
	}
	l := Loop{Curves: []Curve{
		NewSegment(Point{x0 + r, y0}, Point{x1 - r, y0}),
		corner(Point{x1 - r, y0 + r}, 270, Point{x1 - r, y0}, Point{x1, y0 + r}),
		NewSegment(Point{x1, y0 + r}, Point{x1, y1 - r}),
		corner(Point{x1 - r, y1 - r}, 0, Point{x1, y1 - r}, Point{x1 - r, y1}),
		NewSegment(Point{x1 - r, y1}, Point{x0 + r, y1}),
		corner(Point{x0 + r, y1 - r}, 90, Point{x0 + r, y1}, Point{x0, y1 - r}),
		NewSegment(Point{x0, y1 - r}, Point{x0, y0 + r}),
		corner(Point{x0 + r, y0 + r}, 180, Point{x0, y0 + r}, Point{x0 + r, y0}),
	}}
	l.Update()
	return l, true
}

// Counterclockwise circle made of four quarter arcs.
func Circle(center Point, radius float64) (Loop, bool) {
	if radius < EP {
		return Loop{}, false
	}
	l := Loop{}
	for angle := 0.0; angle < 360; angle += 90 {
		l.Curves = append(l.Curves, NewArc(center, radius, angle, angle+90, false))
	}
	l.Update()
	return l, true
}

// Stadium around the segment from p1 to p2: two sides at distance radius
// joined by half circles around the ends.
func Stick(p1, p2 Point, radius float64) (Loop, bool) {
	if p1.Equal(p2) || radius < EP {
		return Loop{}, false
	}
	angle := p1.AngleTo(p2)
	right, left := angle-90, angle+90
	l := Loop{Curves: []Curve{
		NewSegment(p1.Polar(radius, right), p2.Polar(radius, right)),
		NewArc(p2, radius, normalizeAngle(right), normalizeAngle(left), false),
		NewSegment(p2.Polar(radius, left), p1.Polar(radius, left)),
		NewArc(p1, radius, normalizeAngle(left), normalizeAngle(right), false),
	}}
	l.Update()
	return l, true
}

// Ring between two circles: a solid outer circle and a hole of radius
// radius-width.
func Donut(center Point, radius, width float64) ([]Loop, bool) {
	outer, ok := Circle(center, radius)
	if !ok || width < EP || radius-width < EP {
		return nil, false
	}
	inner, _ := Circle(center, radius-width)
	inner.TurnOut()
	inner.Update()
	return []Loop{outer, inner}, true
}

// Arc from start to end bending through via. Fails if the three points are
// collinear.
func ArcThroughPoints(start, end, via Point) (Arc, bool) {
	v1 := start.To(via)
	v2 := via.To(end)
	turn := v1.Cross(v2).Z
	if math.Abs(turn) < EP*EP || start.Equal(end) {
		return Arc{}, false
	}

	// The center lies on the perpendicular bisector of the chord, at the
	// distance that also puts via on the circle
	chord := start.To(end)
	mid := start.Midpoint(end)
	normal := chord.Cross(up).Normalize()
	viaOffset := mid.To(via)
	h := chord.Magnitude() / 2
	along := viaOffset.Dot(normal)
	across := viaOffset.Sub(normal.Scale(along)).Magnitude()
	shift := (along*along + across*across - h*h) / (2 * along)
	center := mid.Translate(normal, shift)

	return NewArcThrough(center, start, end, turn < 0), true
}
