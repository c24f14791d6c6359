package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read loops out of an SVG document. This is not a full SVG reader: it only
// understands polygon, rect and circle elements, and ignores transforms.
// Every element becomes a solid, unless its class is "hole".
func ImportSVG(r io.Reader) ([]Loop, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var loops []Loop
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		l, ok, err := elementLoop(el)
		if err != nil {
			return errors.Wrapf(err, "reading <%s>", el.Name)
		}
		if ok {
			l.MakePositive()
			if el.Attributes["class"] == "hole" {
				l.TurnOut()
			}
			l.Update()
			loops = append(loops, l)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return loops, nil
}

func elementLoop(el *svgparser.Element) (Loop, bool, error) {
	switch el.Name {
	case "polygon":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return Loop{}, false, err
		}
		if len(points) < 3 {
			return Loop{}, false, errors.Errorf("polygon needs at least 3 points, got %d", len(points))
		}
		l := Loop{}
		for i, p := range points {
			l.Curves = append(l.Curves, NewSegment(p, points[CircularIndex(i+1, len(points))]))
		}
		return l, true, nil

	case "rect":
		v, err := parseAttributes(el, "x", "y", "width", "height")
		if err != nil {
			return Loop{}, false, err
		}
		l, ok := Box(Point{v[0], v[1]}, Point{v[0] + v[2], v[1] + v[3]})
		if !ok {
			return Loop{}, false, errors.New("degenerate rect")
		}
		return l, true, nil

	case "circle":
		v, err := parseAttributes(el, "cx", "cy", "r")
		if err != nil {
			return Loop{}, false, err
		}
		l, ok := Circle(Point{v[0], v[1]}, v[2])
		if !ok {
			return Loop{}, false, errors.New("degenerate circle")
		}
		return l, true, nil
	}
	return Loop{}, false, nil
}

// Parse "x1,y1 x2,y2 ..." where commas and whitespace are interchangeable.
func parsePoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	var points []Point
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

func parseAttributes(el *svgparser.Element, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			if name == "x" || name == "y" || name == "cx" || name == "cy" {
				// Position attributes default to zero
				continue
			}
			return nil, errors.Errorf("missing %s", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %q", name, raw)
		}
		values[i] = v
	}
	return values, nil
}
