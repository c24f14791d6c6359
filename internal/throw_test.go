package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A curve kind the kernel does not know how to intersect.
type foreignCurve struct {
	Segment
}

func TestHandleContourPanicRecover(t *testing.T) {
	recovering := func(fn func()) (err error) {
		defer func() {
			err = HandleContourPanicRecover(recover())
		}()
		fn()
		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := recovering(func() { fatalf("kaboom!") })
		assert.EqualError(t, err, "kaboom!")
		var contourErr ContourError
		assert.True(t, errors.As(err, &contourErr))
	})

	t.Run("unknown curve kind", func(t *testing.T) {
		odd := foreignCurve{NewSegment(Point{0, 0}, Point{10, 10})}
		err := recovering(func() {
			sharedPoints(odd, NewSegment(Point{0, 10}, Point{10, 0}))
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot intersect")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			recovering(func() { panic("true panic") })
		})
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			recovering(func() {
				var curves []Curve
				_ = curves[len(curves)]
			})
		})
		assert.Panics(t, func() {
			recovering(func() { panic(errors.New("plain error")) })
		})
	})

	t.Run("no error", func(t *testing.T) {
		assert.NoError(t, recovering(func() {}))
	})
}
