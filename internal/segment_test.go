package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTrimFrom(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})

	t.Run("own start", func(t *testing.T) {
		trimmed, ok := s.TrimFrom(s.Start)
		require.True(t, ok)
		assert.True(t, trimmed.Equal(s))
	})

	t.Run("own end", func(t *testing.T) {
		_, ok := s.TrimFrom(s.End)
		assert.False(t, ok)
	})

	t.Run("interior point", func(t *testing.T) {
		trimmed, ok := s.TrimFrom(Point{4, 0})
		require.True(t, ok)
		assert.Equal(t, Segment{Start: Point{4, 0}, End: Point{10, 0}}, trimmed)
	})

	t.Run("off the segment", func(t *testing.T) {
		_, ok := s.TrimFrom(Point{4, 1})
		assert.False(t, ok)
		_, ok = s.TrimFrom(Point{12, 0})
		assert.False(t, ok)
	})
}

func TestSegmentTrim(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})

	trimmed, ok := s.Trim(Point{2, 0}, Point{5, 0})
	require.True(t, ok)
	assert.Equal(t, Segment{Start: Point{2, 0}, End: Point{5, 0}}, trimmed)

	// Endpoints snap exactly
	trimmed, ok = s.Trim(Point{EP / 10, 0}, Point{10, EP / 10})
	require.True(t, ok)
	assert.Equal(t, s, trimmed)

	_, ok = s.Trim(Point{5, 0}, Point{2, 0})
	assert.False(t, ok, "backwards trims fail")
	_, ok = s.Trim(Point{5, 0}, Point{5, 0})
	assert.False(t, ok, "empty trims fail")
	_, ok = s.Trim(Point{5, 0}, Point{11, 0})
	assert.False(t, ok, "trims past the end fail")
}

func TestSegmentOffset(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})
	// Positive distances move to the right of travel
	assert.Equal(t, Segment{Start: Point{0, -1}, End: Point{10, -1}}, s.Offset(1))
	assert.Equal(t, Segment{Start: Point{0, 2}, End: Point{10, 2}}, s.Offset(-2))
}

func TestSegmentDistance(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{4, 3})

	// Points on the segment are at distance zero from themselves
	for _, p := range []Point{{0, 0}, {2, 1.5}, {4, 3}} {
		require.True(t, s.ContainsPoint(p))
		d, closest := s.Distance(p)
		assert.InDelta(t, 0, d, 1e-12)
		if diff := cmp.Diff(p, closest, approx); diff != "" {
			t.Errorf("closest point mismatch (-want +got):\n%s", diff)
		}
	}

	// Distances are to the infinite line
	d, closest := s.Distance(Point{8, 11})
	assert.InDelta(t, 4.0, d, 1e-9)
	if diff := cmp.Diff(Point{10.4, 7.8}, closest, approx); diff != "" {
		t.Errorf("closest point mismatch (-want +got):\n%s", diff)
	}
}

func TestSegmentDeltas(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})
	assert.InDelta(t, 3.0, s.PositiveDelta(Point{3, 0}), 1e-12)
	assert.InDelta(t, 7.0, s.NegativeDelta(Point{3, 0}), 1e-12)
	assert.Equal(t, -1.0, s.PositiveDelta(Point{3, 1}))
	assert.Equal(t, -1.0, s.NegativeDelta(Point{-1, 0}))
}

func TestSegmentDirections(t *testing.T) {
	s := NewSegment(Point{1, 1}, Point{1, 5})
	assert.Equal(t, Vector{Y: 1}, s.PositiveDirection())
	assert.Equal(t, Vector{Y: -1}, s.NegativeDirection())
	assert.Equal(t, Vector{Y: 1}, s.Tangent(Point{1, 3}))
	assert.True(t, s.IsConvex())
}

func TestSegmentReverse(t *testing.T) {
	s := NewSegment(Point{1, 2}, Point{3, 4})
	assert.Equal(t, Segment{Start: Point{3, 4}, End: Point{1, 2}}, s.Reverse())
	assert.True(t, s.Reverse().Reverse().Equal(s))
	assert.False(t, s.Reverse().Equal(s))
}

func TestSegmentFlip(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})
	assert.False(t, isFlipped(s, Point{1, 1}, Point{9, 1}))
	assert.True(t, isFlipped(s, Point{6, 1}, Point{4, 1}))
}

func TestNormalizeDirection(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{1, 0})
	assert.True(t, MatchesEndpoint(s, Point{1, 0}))
	assert.False(t, MatchesEndpoint(s, Point{0.5, 0}))

	c, ok := NormalizeDirection(s, Point{0, 0})
	require.True(t, ok)
	assert.Equal(t, Curve(s), c)

	c, ok = NormalizeDirection(s, Point{1, EP / 10})
	require.True(t, ok)
	assert.Equal(t, Point{1, 0}, c.StartPoint())

	c, ok = NormalizeDirection(s, Point{2, 0})
	assert.False(t, ok)
	assert.Equal(t, Curve(s), c)
}
