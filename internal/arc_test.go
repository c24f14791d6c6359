package internal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcContainsPoint(t *testing.T) {
	origin := Point{}

	t.Run("counterclockwise", func(t *testing.T) {
		a := NewArc(origin, 1, 0, 90, false)
		assert.True(t, a.ContainsPoint(origin.Polar(1, 0)), "start is inclusive")
		assert.True(t, a.ContainsPoint(origin.Polar(1, 90)), "end is inclusive")
		assert.True(t, a.ContainsPoint(origin.Polar(1, 45)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, 91)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, -1)))
		assert.False(t, a.ContainsPoint(origin.Polar(1.1, 45)), "off the circle")
	})

	t.Run("clockwise", func(t *testing.T) {
		a := NewArc(origin, 1, 90, 0, true)
		assert.True(t, a.ContainsPoint(origin.Polar(1, 90)))
		assert.True(t, a.ContainsPoint(origin.Polar(1, 0)))
		assert.True(t, a.ContainsPoint(origin.Polar(1, 45)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, 180)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, 91)))
	})

	t.Run("wrapping through 360", func(t *testing.T) {
		a := NewArc(origin, 1, 300, 30, false)
		assert.InDelta(t, 90.0, a.Span(), 1e-12)
		assert.True(t, a.ContainsPoint(origin.Polar(1, 300)))
		assert.True(t, a.ContainsPoint(origin.Polar(1, 0)))
		assert.True(t, a.ContainsPoint(origin.Polar(1, 30)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, 31)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, 299)))
		assert.False(t, a.ContainsPoint(origin.Polar(1, 180)))
	})
}

func TestArcTrimFrom(t *testing.T) {
	a := NewArc(Point{}, 1, 0, 90, false)

	trimmed, ok := a.TrimFrom(a.Start)
	require.True(t, ok)
	assert.True(t, trimmed.Equal(a))

	_, ok = a.TrimFrom(a.End)
	assert.False(t, ok)

	_, ok = a.TrimFrom(Point{}.Polar(1, 120))
	assert.False(t, ok)

	trimmed, ok = a.TrimFrom(Point{}.Polar(1, 30))
	require.True(t, ok)
	arc := trimmed.(Arc)
	assert.InDelta(t, 30.0, arc.StartAngle, 1e-9)
	assert.InDelta(t, 90.0, arc.EndAngle, 1e-9)
	assert.Equal(t, a.End, arc.End)
}

func TestArcTrim(t *testing.T) {
	a := NewArc(Point{}, 1, 0, 90, false)
	p30 := Point{}.Polar(1, 30)
	p60 := Point{}.Polar(1, 60)

	trimmed, ok := a.Trim(p30, p60)
	require.True(t, ok)
	arc := trimmed.(Arc)
	assert.InDelta(t, 30.0, arc.StartAngle, 1e-9)
	assert.InDelta(t, 60.0, arc.EndAngle, 1e-9)
	assert.False(t, arc.Clockwise)

	_, ok = a.Trim(p60, p30)
	assert.False(t, ok, "backwards trims fail")

	trimmed, ok = a.Trim(a.Start, a.End)
	require.True(t, ok)
	assert.True(t, trimmed.Equal(a))

	t.Run("clockwise", func(t *testing.T) {
		cw := NewArc(Point{}, 1, 90, 0, true)
		trimmed, ok := cw.Trim(p60, p30)
		require.True(t, ok)
		assert.InDelta(t, 30.0, trimmed.(Arc).Span(), 1e-9)
		_, ok = cw.Trim(p30, p60)
		assert.False(t, ok)
	})

	t.Run("wrapping through 360", func(t *testing.T) {
		wrap := NewArc(Point{}, 1, 300, 30, false)
		trimmed, ok := wrap.Trim(Point{}.Polar(1, 330), Point{}.Polar(1, 10))
		require.True(t, ok)
		assert.InDelta(t, 40.0, trimmed.(Arc).Span(), 1e-9)
	})
}

func TestArcOffset(t *testing.T) {
	convex := NewArc(Point{}, 1, 0, 90, false)
	require.True(t, convex.IsConvex())
	grown := convex.Offset(0.5).(Arc)
	assert.InDelta(t, 1.5, grown.Radius, 1e-12)
	if diff := cmp.Diff(Point{1.5, 0}, grown.Start, approx); diff != "" {
		t.Errorf("start mismatch (-want +got):\n%s", diff)
	}

	// A clockwise arc turns right, so its solid side is outside the circle
	concave := NewArc(Point{}, 1, 90, 0, true)
	require.False(t, concave.IsConvex())
	shrunk := concave.Offset(0.5).(Arc)
	assert.InDelta(t, 0.5, shrunk.Radius, 1e-12)
	assert.True(t, shrunk.Clockwise)
}

func TestArcDirections(t *testing.T) {
	a := NewArc(Point{}, 1, 0, 90, false)

	start := a.PositiveDirection()
	assert.InDelta(t, 0, start.X, 0.01)
	assert.InDelta(t, 1, start.Y, 0.01)

	end := a.NegativeDirection()
	assert.InDelta(t, 1, end.X, 0.01)
	assert.InDelta(t, 0, end.Y, 0.01)

	tangent := a.Tangent(Point{}.Polar(1, 90))
	assert.InDelta(t, -1, tangent.X, 0.01)
	assert.InDelta(t, 0, tangent.Y, 0.01)

	cw := a.Reverse()
	tangent = cw.Tangent(Point{}.Polar(1, 45))
	assert.InDelta(t, math.Sqrt2/2, tangent.X, 0.01)
	assert.InDelta(t, -math.Sqrt2/2, tangent.Y, 0.01)
}

func TestArcDistance(t *testing.T) {
	a := NewArc(Point{}, 1, 0, 90, false)
	d, closest := a.Distance(Point{3, 0})
	assert.InDelta(t, 2.0, d, 1e-12)
	if diff := cmp.Diff(Point{1, 0}, closest, approx); diff != "" {
		t.Errorf("closest point mismatch (-want +got):\n%s", diff)
	}
}

func TestArcDeltas(t *testing.T) {
	a := NewArc(Point{}, 2, 0, 90, false)
	mid := Point{}.Polar(2, 45)
	assert.InDelta(t, math.Pi/2, a.PositiveDelta(mid), 1e-9)
	assert.InDelta(t, math.Pi/2, a.NegativeDelta(mid), 1e-9)
	assert.InDelta(t, 0, a.PositiveDelta(a.Start), 1e-9)
	assert.InDelta(t, math.Pi, a.NegativeDelta(a.Start), 1e-9)
	assert.Equal(t, -1.0, a.PositiveDelta(Point{}.Polar(2, 180)))
}

func TestArcEqual(t *testing.T) {
	a := NewArc(Point{}, 1, 0, 90, false)
	b := a
	b.Radius += EP / 100
	assert.True(t, a.Equal(b), "radii within tolerance are equal")

	b = a
	b.Radius += 1e-3
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(a.Reverse()))
	assert.True(t, a.Equal(a.Reverse().Reverse()))
	assert.False(t, a.Equal(NewSegment(a.Start, a.End)))

	// 0 and 360 degrees are the same angle
	c := a
	c.StartAngle = 360
	assert.True(t, a.Equal(c))
}

func TestArcBounds(t *testing.T) {
	quarter := NewArc(Point{}, 1, 0, 90, false).Bounds()
	assert.InDelta(t, 0, quarter.MinX, 1e-9)
	assert.InDelta(t, 0, quarter.MinY, 1e-9)
	assert.InDelta(t, 1, quarter.MaxX, 1e-9)
	assert.InDelta(t, 1, quarter.MaxY, 1e-9)

	half := NewArc(Point{}, 1, 0, 180, false).Bounds()
	assert.InDelta(t, -1, half.MinX, 1e-9)
	assert.InDelta(t, 0, half.MinY, 1e-9)
	assert.InDelta(t, 1, half.MaxX, 1e-9)
	assert.InDelta(t, 1, half.MaxY, 1e-9)
}

func TestArcThroughPoints(t *testing.T) {
	a, ok := ArcThroughPoints(Point{1, 0}, Point{-1, 0}, Point{0, 1})
	require.True(t, ok)
	assert.False(t, a.Clockwise)
	assert.InDelta(t, 1.0, a.Radius, 1e-9)
	if diff := cmp.Diff(Point{}, a.Center, approx); diff != "" {
		t.Errorf("center mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, a.ContainsPoint(Point{0, 1}))

	b, ok := ArcThroughPoints(Point{1, 0}, Point{-1, 0}, Point{0, -1})
	require.True(t, ok)
	assert.True(t, b.Clockwise)
	assert.True(t, b.ContainsPoint(Point{0, -1}))

	_, ok = ArcThroughPoints(Point{0, 0}, Point{2, 0}, Point{1, 0})
	assert.False(t, ok)
}
