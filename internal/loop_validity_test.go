package internal

// This contains no actual tests. It is just a helper for checking loop
// invariants.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a completed loop is valid. The rules are:
// 1. Every curve ends where the next one starts.
// 2. Every endpoint is shared by exactly two curves.
// 3. No curve crosses another.
// 4. The signed area agrees with the orientation.
// 5. Updating again changes nothing.
func AssertValidLoop(t *testing.T, l Loop) {
	t.Helper()
	require.True(t, l.Completed, "loop must be completed")
	assert.True(t, l.IsSorted(), "curves must chain")
	assert.Equal(t, -1, l.FrozenTerm(), "endpoints must be paired")
	assert.Equal(t, -1, l.FrozenCurve(), "curves must not cross")

	area := l.Area()
	assert.Greater(t, math.Abs(area), EP, "loop must enclose something")
	assert.Equal(t, l.Positive, area > 0, "orientation must agree with signed area")

	again := l.Clone()
	again.Update()
	assert.Equal(t, l.Completed, again.Completed, "update must be idempotent")
	assert.Equal(t, l.Positive, again.Positive, "update must be idempotent")
}

// Every expected point must match one of the actual points.
func AssertPointsMatch(t *testing.T, expected, actual []Point) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for _, e := range expected {
		found := false
		for _, a := range actual {
			if a.Equal(e) {
				found = true
				break
			}
		}
		assert.True(t, found, "expected point %v in %v", e, actual)
	}
}

func startPoints(l Loop) []Point {
	var points []Point
	for _, c := range l.Curves {
		points = append(points, c.StartPoint())
	}
	return points
}

func totalArea(loops []Loop) float64 {
	var area float64
	for i := range loops {
		area += loops[i].Area()
	}
	return area
}
