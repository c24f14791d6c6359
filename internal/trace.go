package internal

// A point where a trace meets a curve: the curve at index in loops[owner].
type hit struct {
	point Point
	owner int
	index int
}

// Walks a set of loops, switching onto whichever curve is crossed next, until
// the walk returns to where it started. The offset splitter traces within one
// loop; the merge engine traces across loops.
type tracer struct {
	loops []Loop
	// Find the next crossing along probe, which is a piece of the curve at from.
	next func(from hit, probe Curve) (hit, bool)
	// Upper bound on the number of pieces in one trace.
	budget int
}

func newTracer(loops []Loop, next func(hit, Curve) (hit, bool)) tracer {
	total := 0
	for i := range loops {
		total += len(loops[i].Curves)
	}
	return tracer{loops: loops, next: next, budget: 4*total + 16}
}

// Trace a closed loop that begins with first, which runs from start to the
// crossing at. The result is updated; callers check Completed.
func (t tracer) trace(start Point, first Curve, at hit) Loop {
	curves := []Curve{first}
	closed := false
	for step := 0; step < t.budget; step++ {
		rest, ok := t.loops[at.owner].Curves[at.index].TrimFrom(at.point)
		if !ok {
			break
		}
		if next, ok := t.next(at, rest); ok {
			piece, ok := rest.Trim(rest.StartPoint(), next.point)
			if !ok {
				break
			}
			curves = append(curves, piece)
			at = next
		} else {
			curves = append(curves, rest)
			owner := &t.loops[at.owner]
			at = hit{
				point: rest.EndPoint(),
				owner: at.owner,
				index: CircularIndex(at.index+1, len(owner.Curves)),
			}
		}
		if at.point.Equal(start) {
			closed = true
			break
		}
	}
	if !closed {
		Logger().Warn("abandoned trace", "start", start, "pieces", len(curves))
	}

	traced := Loop{Curves: curves}
	traced.Update()
	return traced
}

// Drop every loop that contains the first curve of an earlier loop, matched by
// endpoints. Tracing the same region from two starting points produces such
// duplicates.
func removeDuplicated(loops []Loop) []Loop {
	dropped := make([]bool, len(loops))
	for i := range loops {
		if dropped[i] || len(loops[i].Curves) == 0 {
			continue
		}
		first := loops[i].Curves[0]
		for j := i + 1; j < len(loops); j++ {
			if dropped[j] {
				continue
			}
			for _, c := range loops[j].Curves {
				if first.StartPoint().Equal(c.StartPoint()) && first.EndPoint().Equal(c.EndPoint()) {
					dropped[j] = true
					break
				}
			}
		}
	}

	var kept []Loop
	for i, l := range loops {
		if !dropped[i] {
			kept = append(kept, l)
		}
	}
	return kept
}
