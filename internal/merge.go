package internal

import (
	"math"
	"sort"

	"github.com/peterstace/simplefeatures/rtree"
)

// Combine the loops of a scene. Loops that cross are retraced into the outline
// of their union, switching from one loop to the other at every crossing.
// Loops that cross nothing are kept or dropped by a signed nesting count, so
// a solid nested inside another solid cancels out.
// Incomplete loops pass through untouched.
func Merge(loops []Loop) []Loop {
	if len(loops) < 2 {
		return loops
	}

	m := newMerger(loops)
	var merged []Loop
	for i := range loops {
		if !loops[i].Completed {
			merged = append(merged, loops[i])
			continue
		}

		subs, crossed := m.traceLoop(i)
		if crossed || len(subs) > 0 {
			Logger().Debug("merged crossing loop", "loop", &loops[i], "pieces", len(subs))
			merged = append(merged, subs...)
			continue
		}

		if depth := m.depth(i); depth > 1 {
			Logger().Debug("cancelled nested loop", "loop", &loops[i], "depth", depth)
			continue
		}
		merged = append(merged, loops[i])
		m.pending[i] = false
	}
	return removeDuplicated(merged)
}

type merger struct {
	loops []Loop
	// Loops that may still be crossed. A loop that has been kept without
	// crossing anything is not considered again.
	pending []bool
	// Bounding boxes of the completed loops, keyed by index.
	index rtree.RTree
}

func newMerger(loops []Loop) *merger {
	m := &merger{
		loops:   loops,
		pending: make([]bool, len(loops)),
	}
	for i := range loops {
		m.pending[i] = true
		if loops[i].Completed && len(loops[i].Curves) > 0 {
			m.index.Insert(padBox(loops[i].Bounds()), i)
		}
	}
	return m
}

// Indices of the completed loops whose bounds overlap box, in scene order.
func (m *merger) candidates(box rtree.Box) []int {
	var found []int
	err := m.index.RangeSearch(padBox(box), func(i int) error {
		found = append(found, i)
		return nil
	})
	if err != nil {
		fatalf("searching loop index: %v", err)
	}
	sort.Ints(found)
	return found
}

// Find where probe first crosses a pending loop other than owner. The nearest
// crossing, measured from the probe's start, wins.
func (m *merger) nextCrossing(owner int, probe Curve) (hit, bool) {
	var best hit
	found := false
	nearest := math.Inf(1)
	for _, i := range m.candidates(probe.Bounds()) {
		if i == owner || !m.pending[i] {
			continue
		}
		p, index, ok := m.loops[i].SelfIntersection(-1, probe)
		if !ok {
			continue
		}
		if d := p.DistanceTo(probe.StartPoint()); d < nearest {
			best = hit{point: p, owner: i, index: index}
			nearest = d
			found = true
		}
	}
	return best, found
}

// Trace the union outlines that start on the loop at owner. Reports whether
// the loop crosses any other loop at all.
func (m *merger) traceLoop(owner int) ([]Loop, bool) {
	t := newTracer(m.loops, func(from hit, probe Curve) (hit, bool) {
		return m.nextCrossing(from.owner, probe)
	})

	var subs []Loop
	crossed := false
	for _, c := range m.loops[owner].Curves {
		probe := c
		for {
			at, ok := m.nextCrossing(owner, probe)
			if !ok {
				break
			}
			crossed = true
			start := probe.StartPoint()
			piece, ok := c.Trim(start, at.point)
			if !ok {
				break
			}
			// Only pieces arriving from outside the other loop are on the union's
			// outline
			if !m.loops[at.owner].IsInsideAt(piece, at.index) {
				sub := t.trace(start, piece, at)
				if sub.Completed {
					subs = append(subs, sub)
				}
			}
			if probe, ok = c.TrimFrom(at.point); !ok {
				break
			}
		}
	}
	if len(subs) > 1 {
		subs = removeDuplicated(subs)
	}
	return subs, crossed
}

// Nesting depth of a loop that crosses nothing: one for each solid containing
// it, minus one for each hole containing it, plus one if it is a solid itself.
func (m *merger) depth(owner int) int {
	l := &m.loops[owner]
	depth := 0
	for _, i := range m.candidates(l.Bounds()) {
		if i == owner {
			continue
		}
		container := m.loops[i].Clone()
		if !container.Positive {
			container.TurnOut()
		}
		if container.IsInsideLoop(l) {
			if m.loops[i].Positive {
				depth++
			} else {
				depth--
			}
		}
	}
	if l.Positive {
		depth++
	}
	return depth
}
