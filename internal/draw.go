package internal

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const renderPadding = 20

type RenderOptions struct {
	// Pixels per drawing unit
	Scale     float64
	LineWidth float64
}

var DefaultRenderOptions = RenderOptions{Scale: 10, LineWidth: 2}

// Draw a scene. Solids are filled, holes are cut out of them, and incomplete
// loops are only stroked.
func Render(loops []Loop, opts RenderOptions) image.Image {
	if opts.Scale <= 0 {
		opts.Scale = DefaultRenderOptions.Scale
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultRenderOptions.LineWidth
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range loops {
		if len(loops[i].Curves) == 0 {
			continue
		}
		box := loops[i].Bounds()
		minX, minY = math.Min(minX, box.MinX), math.Min(minY, box.MinY)
		maxX, maxY = math.Max(maxX, box.MaxX), math.Max(maxY, box.MaxY)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(opts.Scale*(maxX-minX)) + renderPadding*2
	height := int(opts.Scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-minX, -minY)

	// Fill solids first, then holes over them
	for _, positive := range []bool{true, false} {
		for i := range loops {
			l := &loops[i]
			if !l.Completed || l.Positive != positive {
				continue
			}
			l.tracePath(c)
			if positive {
				c.SetRGBA(0.2, 0.6, 0.3, 0.8)
			} else {
				c.SetRGB(0, 0, 0)
			}
			c.Fill()
		}
	}

	c.SetLineWidth(opts.LineWidth)
	for i := range loops {
		l := &loops[i]
		switch {
		case !l.Completed:
			c.SetRGB(1, 0.8, 0)
		case l.Positive:
			c.SetRGB(0.4, 1, 0.5)
		default:
			c.SetRGB(1, 0.3, 0.3)
		}
		l.tracePath(c)
		c.Stroke()
	}
	return c.Image()
}

func (l *Loop) tracePath(c *gg.Context) {
	c.NewSubPath()
	for i, curve := range l.Curves {
		if i == 0 {
			start := curve.StartPoint()
			c.MoveTo(start.X, start.Y)
		}
		switch curve := curve.(type) {
		case Segment:
			c.LineTo(curve.End.X, curve.End.Y)
		case Arc:
			sa, ea := curve.absoluteAngles()
			c.DrawArc(curve.Center.X, curve.Center.Y, curve.Radius, degToRad(sa), degToRad(ea))
		default:
			fatalf("cannot draw %v", curve)
		}
	}
	if l.Completed {
		c.ClosePath()
	}
}

func SavePNG(path string, loops []Loop, opts RenderOptions) error {
	return errors.Wrapf(gg.SavePNG(path, Render(loops, opts)), "saving %s", path)
}

// Helper to draw and print a scene in the terminal (iTerm only) for debugging.
func dbgDraw(loops []Loop, scale float64) {
	const path = "/tmp/contour.png"
	if err := SavePNG(path, loops, RenderOptions{Scale: scale}); err != nil {
		Logger().Warn("dbgDraw failed", "error", err)
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
