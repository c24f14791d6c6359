// A planar contour kernel for Go.
//
// This package builds closed contours out of straight segments and circular
// arcs, keeps them normalized, offsets them, and merges overlapping contours
// into their union. Counterclockwise loops are solids, clockwise loops are
// holes.
//
// All computation is in float64 with fixed tolerances: coordinates closer than
// EP are the same coordinate, and angles closer than EPA degrees are the same
// angle.
package contour

import (
	"io"
	"log/slog"

	"github.com/osuushi/contour/internal"
)

type Point = internal.Point
type Curve = internal.Curve
type Segment = internal.Segment
type Arc = internal.Arc
type Loop = internal.Loop
type Intersection = internal.Intersection
type Options = internal.Options
type Scene = internal.Scene
type RenderOptions = internal.RenderOptions

const (
	EP                 = internal.EP
	EPA                = internal.EPA
	DefaultOffsetSteps = internal.DefaultOffsetSteps
)

const (
	NoIntersection = internal.NoIntersection
	Crossing       = internal.Crossing
	Coincident     = internal.Coincident
)

func NewSegment(start, end Point) Segment {
	return internal.NewSegment(start, end)
}

// Arc on the circle around center from startAngle to endAngle, in degrees.
func NewArc(center Point, radius, startAngle, endAngle float64, clockwise bool) Arc {
	return internal.NewArc(center, radius, startAngle, endAngle, clockwise)
}

// Arc around center between two points.
func NewArcThrough(center, start, end Point, clockwise bool) Arc {
	return internal.NewArcThrough(center, start, end, clockwise)
}

// Build a loop out of curves in any order. Check Completed on the result to
// see whether they formed a closed contour.
func NewLoop(curves ...Curve) Loop {
	return internal.NewLoop(curves...)
}

func NewScene(opts Options) *Scene {
	return internal.NewScene(opts)
}

// Offset a loop by a signed distance. Positive distances move the boundary
// away from the solid. The result may hold several loops if the offset split
// the loop, or none if it collapsed.
func Offset(l Loop, d float64, opts Options) (result []Loop, err error) {
	defer func() {
		if recoveredErr := internal.HandleContourPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Offset(l, d, opts), nil
}

// Offset every loop of a scene, merging the scene as the loops grow.
func OffsetScene(loops []Loop, d float64, opts Options) (result []Loop, err error) {
	defer func() {
		if recoveredErr := internal.HandleContourPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.OffsetScene(loops, d, opts), nil
}

// Merge the loops of a scene into the outlines of their union.
func Merge(loops []Loop) (result []Loop, err error) {
	defer func() {
		if recoveredErr := internal.HandleContourPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Merge(loops), nil
}

// Where two bounded curves meet.
func Conflict(a, b Curve) Intersection {
	return internal.Conflict(a, b)
}

func IsInsidePoint(l *Loop, p Point) bool {
	return l.IsInsidePoint(p)
}

func Encode(w io.Writer, loops []Loop) error {
	return internal.Encode(w, loops)
}

func Decode(r io.Reader) ([]Loop, error) {
	return internal.Decode(r)
}

func LoadFile(path string) ([]Loop, error) {
	return internal.LoadFile(path)
}

func SaveFile(path string, loops []Loop) error {
	return internal.SaveFile(path, loops)
}

func ImportSVG(r io.Reader) ([]Loop, error) {
	return internal.ImportSVG(r)
}

func SavePNG(path string, loops []Loop, opts RenderOptions) error {
	return internal.SavePNG(path, loops, opts)
}

func Box(p1, p2 Point) (Loop, bool) {
	return internal.Box(p1, p2)
}

func RoundedBox(p1, p2 Point) (Loop, bool) {
	return internal.RoundedBox(p1, p2)
}

func Circle(center Point, radius float64) (Loop, bool) {
	return internal.Circle(center, radius)
}

func Stick(p1, p2 Point, radius float64) (Loop, bool) {
	return internal.Stick(p1, p2, radius)
}

func Donut(center Point, radius, width float64) ([]Loop, bool) {
	return internal.Donut(center, radius, width)
}

func ArcThroughPoints(start, end, via Point) (Arc, bool) {
	return internal.ArcThroughPoints(start, end, via)
}

// Set the logger for the offset and merge engines. Logging is off by default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
