package internal

import (
	"embed"
	"log"
)

// SVG fixtures are available by name in the fixtures/ directory, sans
// extension. If anything goes wrong, loading fails the whole test binary.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Loop {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	loops, err := ImportSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to import fixture %q: %v", name, err)
	}
	if len(loops) == 0 {
		log.Fatalf("No loops found in fixture %q", name)
	}
	return loops
}

// Some ad hoc fixtures

func UnitCircle() Loop {
	l, _ := Circle(Point{}, 1)
	return l
}

func Square(x0, y0, x1, y1 float64) Loop {
	l, _ := Box(Point{x0, y0}, Point{x1, y1})
	return l
}

// A bowtie, which crosses itself in the middle.
func Bowtie() Loop {
	points := []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}
	l := Loop{}
	for i, p := range points {
		l.Curves = append(l.Curves, NewSegment(p, points[CircularIndex(i+1, len(points))]))
	}
	l.Update()
	return l
}
