package internal

import "math"

// Large offsets are split into this many equal passes by default. A single
// large step creates self-intersections that the splitter cannot tell apart
// from the ones already in the drawing.
const DefaultOffsetSteps = 10

type Options struct {
	// Number of passes an offset is split into. Zero or less means
	// DefaultOffsetSteps.
	OffsetSteps int
}

func (o Options) steps() int {
	if o.OffsetSteps <= 0 {
		return DefaultOffsetSteps
	}
	return o.OffsetSteps
}

// Offset a single loop. See OffsetScene.
func Offset(l Loop, d float64, opts Options) []Loop {
	return OffsetScene([]Loop{l}, d, opts)
}

// Offset every completed loop of a scene by d. A positive distance moves each
// boundary away from its solid side, so solids grow and holes shrink. Each pass
// splits loops at their own crossings, drops loops that collapse, and merges
// the scene again. Incomplete loops are carried along untouched.
func OffsetScene(loops []Loop, d float64, opts Options) []Loop {
	steps := opts.steps()
	step := d / float64(steps)
	scene := loops
	for pass := 0; pass < steps; pass++ {
		var kept, split []Loop
		for _, l := range scene {
			replaced, didSplit := offsetPass(l, step)
			if didSplit {
				split = append(split, replaced...)
			} else {
				kept = append(kept, replaced...)
			}
		}
		scene = Merge(append(kept, removeDuplicated(split)...))
		Logger().Debug("offset pass", "pass", pass+1, "distance", step, "loops", len(scene))
	}
	return scene
}

// A curve moved by an offset, along with the corner points it will be cut or
// extended to once the neighboring curves have been moved too.
type offsetCandidate struct {
	source Curve
	moved  Curve
	start  Point
	end    Point
}

func newOffsetCandidate(c Curve, d float64) offsetCandidate {
	moved := c.Offset(d)
	return offsetCandidate{
		source: c,
		moved:  moved,
		start:  moved.StartPoint(),
		end:    moved.EndPoint(),
	}
}

// Would moving to the corner points turn the curve around?
func (c offsetCandidate) flipped() bool {
	return isFlipped(c.source, c.start, c.end)
}

func (c offsetCandidate) commit() Curve {
	switch moved := c.moved.(type) {
	case Segment:
		return Segment{Start: c.start, End: c.end}
	case Arc:
		return Arc{
			Start:      c.start,
			End:        c.end,
			Center:     moved.Center,
			Radius:     moved.Radius,
			StartAngle: moved.Center.AngleTo(c.start),
			EndAngle:   moved.Center.AngleTo(c.end),
			Clockwise:  moved.Clockwise,
		}
	}
	fatalf("cannot commit offset of %v", c.moved)
	return nil
}

// Offset one loop by d in a single pass. Returns the loops that replace it, and
// whether they are pieces split off at self-crossings rather than the loop
// itself.
func offsetPass(l Loop, d float64) ([]Loop, bool) {
	if !l.Completed {
		return []Loop{l}, false
	}
	clockwise := d <= 0

	curves := dropCollapsedArcs(l.Curves, d)
	curves = joinParallelSegments(curves)
	curves = dropFlipped(curves, d)
	if len(curves) < 2 {
		Logger().Debug("loop collapsed", "loop", &l)
		return nil, false
	}

	moved := Loop{Curves: offsetCorners(curves, d, clockwise)}
	if subs, split := splitSelfCrossings(&moved, clockwise); split {
		return removeDuplicated(subs), true
	}

	moved.Update()
	if !moved.Completed || moved.Positive != l.Positive {
		// An orientation flip means the loop shrank past nothing
		Logger().Debug("loop inverted", "loop", &l)
		return nil, false
	}
	return []Loop{moved}, false
}

func dropCollapsedArcs(curves []Curve, d float64) []Curve {
	var kept []Curve
	for _, c := range curves {
		if a, ok := c.Offset(d).(Arc); ok && a.Radius < EP {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func parallel(a, b Segment) bool {
	return math.Abs(a.PositiveDirection().Cross(b.PositiveDirection()).Z) < parallelCross
}

// Join runs of consecutive, nearly parallel segments into single segments,
// including a run that wraps around the end of the loop.
func joinParallelSegments(curves []Curve) []Curve {
	var joined []Curve
	for _, c := range curves {
		if n := len(joined); n > 0 {
			prev, prevOk := joined[n-1].(Segment)
			next, nextOk := c.(Segment)
			if prevOk && nextOk && parallel(prev, next) {
				joined[n-1] = Segment{Start: prev.Start, End: next.End}
				continue
			}
		}
		joined = append(joined, c)
	}

	if n := len(joined); n > 2 {
		last, lastOk := joined[n-1].(Segment)
		first, firstOk := joined[0].(Segment)
		if lastOk && firstOk && parallel(last, first) {
			joined[0] = Segment{Start: last.Start, End: first.End}
			joined = joined[:n-1]
		}
	}
	return joined
}

// First guess at the corners: intersect the unbounded extensions of each pair
// of neighbors, preferring the intersection nearest the original vertex.
func tentativeCorners(curves []Curve, d float64) []offsetCandidate {
	n := len(curves)
	candidates := make([]offsetCandidate, n)
	for i, c := range curves {
		candidates[i] = newOffsetCandidate(c, d)
	}
	for i := range curves {
		prev := CircularIndex(i-1, n)
		current, previous := candidates[i].moved, candidates[prev].moved
		start, end := current.StartPoint(), previous.EndPoint()

		switch x := sharedPoints(current, previous); x.Kind {
		case Crossing:
			if p, ok := x.NearestTo(curves[i].StartPoint()); ok {
				start, end = p, p
			}
		case Coincident:
			end = start
		}
		candidates[i].start = start
		candidates[prev].end = end
	}
	return candidates
}

// Drop curves whose tentative corners turn them around. Their neighbors will
// meet directly instead.
func dropFlipped(curves []Curve, d float64) []Curve {
	var kept []Curve
	for i, c := range tentativeCorners(curves, d) {
		if !c.flipped() {
			kept = append(kept, curves[i])
		}
	}
	return kept
}

// Move every curve and reconnect the neighbors. Neighbors that cross within
// their bounds are cut at the crossing; neighbors that moved apart are joined
// by a fillet arc around the old vertex.
func offsetCorners(curves []Curve, d float64, clockwise bool) []Curve {
	n := len(curves)
	candidates := make([]offsetCandidate, n)
	for i, c := range curves {
		candidates[i] = newOffsetCandidate(c, d)
	}
	fillets := make([]Curve, n)

	for i := range curves {
		prev := CircularIndex(i-1, n)
		current, previous := candidates[i].moved, candidates[prev].moved
		start, end := current.StartPoint(), previous.EndPoint()

		if start.Equal(end) {
			end = start
		} else {
			switch x := Conflict(current, previous); x.Kind {
			case Crossing:
				p, _ := x.NearestTo(curves[i].StartPoint())
				start, end = p, p
			case Coincident:
				end = start
			default:
				center := curves[i].StartPoint()
				if vertex := curves[prev].EndPoint(); !center.Equal(vertex) {
					center = center.Midpoint(vertex)
				}
				fillets[i] = NewArcThrough(center, end, start, clockwise)
			}
		}
		candidates[i].start = start
		candidates[prev].end = end
	}

	var committed []Curve
	for i, c := range candidates {
		if fillets[i] != nil {
			committed = append(committed, fillets[i])
		}
		committed = append(committed, c.commit())
	}
	return committed
}

// Split a freshly offset loop at the points where it crosses itself. Each
// crossing approached from the kept side starts a trace around a new sub-loop.
// Reports whether any split happened; only completed sub-loops are returned.
func splitSelfCrossings(l *Loop, clockwise bool) ([]Loop, bool) {
	t := newTracer([]Loop{*l}, func(from hit, probe Curve) (hit, bool) {
		p, index, ok := l.SelfIntersection(from.index, probe)
		return hit{point: p, index: index}, ok
	})

	var subs []Loop
	split := false
	for i, c := range l.Curves {
		probe := c
		for {
			p, index, ok := l.SelfIntersection(i, probe)
			if !ok {
				break
			}
			start := probe.StartPoint()
			piece, ok := c.Trim(start, p)
			if !ok {
				break
			}
			if l.IsInsideAt(piece, index) == clockwise {
				split = true
				sub := t.trace(start, piece, hit{point: p, index: index})
				if sub.Completed {
					subs = append(subs, sub)
				}
			}
			if probe, ok = c.TrimFrom(p); !ok {
				break
			}
		}
	}
	return subs, split
}
