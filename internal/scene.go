package internal

import "math"

// An editable drawing. Edits keep the scene merged, and each edit takes a
// backup that Restore returns to.
type Scene struct {
	Loops   []Loop
	Options Options

	backup []Loop
}

func NewScene(opts Options) *Scene {
	return &Scene{Options: opts}
}

// Add a finished loop and merge it into the scene.
func (s *Scene) Add(l Loop) {
	s.Loops = append(s.Loops, l.Clone())
	s.commit()
}

// Add a single curve. A curve that ends on an existing loop extends that loop,
// and a curve that bridges two loops joins them. The curve's endpoints snap to
// the endpoints they match.
func (s *Scene) AddCurve(c Curve) {
	startOwner, start := s.findEndpoint(c.StartPoint())
	endOwner, end := s.findEndpoint(c.EndPoint())
	if start.Equal(end) {
		return
	}
	c = moveEndpoints(c, start, end)

	switch {
	case startOwner == -1 && endOwner == -1:
		s.Loops = append(s.Loops, Loop{Curves: []Curve{c}})
	case startOwner == -1 || startOwner == endOwner:
		s.extend(endOwner, c)
	case endOwner == -1:
		s.extend(startOwner, c)
	default:
		s.extend(startOwner, c)
		joined := &s.Loops[startOwner]
		joined.Curves = append(joined.Curves, s.Loops[endOwner].Curves...)
		joined.Update()
		s.Loops = append(s.Loops[:endOwner], s.Loops[endOwner+1:]...)
	}
	s.commit()
}

func (s *Scene) extend(owner int, c Curve) {
	l := &s.Loops[owner]
	l.Curves = append(l.Curves, c)
	l.Update()
}

func (s *Scene) commit() {
	s.Loops = Merge(s.Loops)
	s.Backup()
}

// Find the first loop with an endpoint at p, and the exact endpoint. Returns -1
// and p itself if there is none.
func (s *Scene) findEndpoint(p Point) (int, Point) {
	for i := range s.Loops {
		for _, c := range s.Loops[i].Curves {
			if c.StartPoint().Equal(p) {
				return i, c.StartPoint()
			}
			if c.EndPoint().Equal(p) {
				return i, c.EndPoint()
			}
		}
	}
	return -1, p
}

func moveEndpoints(c Curve, start, end Point) Curve {
	switch c := c.(type) {
	case Segment:
		return Segment{Start: start, End: end}
	case Arc:
		return NewArcThrough(c.Center, start, end, c.Clockwise)
	}
	fatalf("cannot move endpoints of %v", c)
	return nil
}

// Points worth snapping a cursor to: every curve endpoint, every arc center,
// and every point where two curves of the scene cross.
func (s *Scene) SnapPoints() []Point {
	var points []Point
	var curves []Curve
	for i := range s.Loops {
		curves = append(curves, s.Loops[i].Curves...)
	}
	for i, c := range curves {
		points = append(points, c.StartPoint(), c.EndPoint())
		if a, ok := c.(Arc); ok {
			points = append(points, a.Center)
		}
		for _, other := range curves[i+1:] {
			x := Conflict(c, other)
			if x.Kind != Crossing {
				continue
			}
			for k, p := range x.Points {
				if x.Valid[k] {
					points = append(points, p)
				}
			}
		}
	}
	return points
}

// The snap point nearest p, if it is within radius.
func (s *Scene) Snap(p Point, radius float64) (Point, bool) {
	var best Point
	nearest := math.Inf(1)
	for _, q := range s.SnapPoints() {
		if d := q.DistanceTo(p); d < nearest {
			best, nearest = q, d
		}
	}
	if nearest < radius {
		return best, true
	}
	return p, false
}

func (s *Scene) Offset(d float64) {
	s.Loops = OffsetScene(s.Loops, d, s.Options)
}

func (s *Scene) Merge() {
	s.Loops = Merge(s.Loops)
}

func (s *Scene) Backup() {
	s.backup = cloneLoops(s.Loops)
}

// Return to the last backup, discarding later offsets.
func (s *Scene) Restore() {
	s.Loops = cloneLoops(s.backup)
}

func (s *Scene) Clear() {
	s.Loops = nil
	s.backup = nil
}

func cloneLoops(loops []Loop) []Loop {
	if loops == nil {
		return nil
	}
	clones := make([]Loop, len(loops))
	for i := range loops {
		clones[i] = loops[i].Clone()
	}
	return clones
}
