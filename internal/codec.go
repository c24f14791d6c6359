package internal

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Scene files are little endian: an int32 loop count, then for each loop an
// int32 curve count followed by the curves. Each curve is an int32 kind tag and
// its fields as float64s. Arcs end with a single clockwise byte.

var byteOrder = binary.LittleEndian

func Encode(w io.Writer, loops []Loop) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, int32(len(loops))); err != nil {
		return errors.Wrap(err, "writing loop count")
	}
	for i := range loops {
		if err := EncodeLoop(bw, &loops[i]); err != nil {
			return errors.Wrapf(err, "writing loop %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "writing scene")
}

func EncodeLoop(w io.Writer, l *Loop) error {
	if err := binary.Write(w, byteOrder, int32(len(l.Curves))); err != nil {
		return errors.Wrap(err, "writing curve count")
	}
	for i, c := range l.Curves {
		if err := writeCurve(w, c); err != nil {
			return errors.Wrapf(err, "writing curve %d", i)
		}
	}
	return nil
}

func writeCurve(w io.Writer, c Curve) error {
	if err := binary.Write(w, byteOrder, int32(c.Kind())); err != nil {
		return err
	}
	switch c := c.(type) {
	case Segment:
		return binary.Write(w, byteOrder, [4]float64{c.Start.X, c.Start.Y, c.End.X, c.End.Y})
	case Arc:
		fields := [9]float64{
			c.Start.X, c.Start.Y, c.End.X, c.End.Y,
			c.Center.X, c.Center.Y,
			c.Radius, c.StartAngle, c.EndAngle,
		}
		if err := binary.Write(w, byteOrder, fields); err != nil {
			return err
		}
		return binary.Write(w, byteOrder, c.Clockwise)
	}
	fatalf("cannot encode %v", c)
	return nil
}

// Read a whole scene. Nothing is returned unless every loop reads cleanly.
func Decode(r io.Reader) ([]Loop, error) {
	br := bufio.NewReader(r)
	count, err := readCount(br)
	if err != nil {
		return nil, errors.Wrap(err, "reading loop count")
	}
	var loops []Loop
	for i := 0; i < count; i++ {
		l, err := DecodeLoop(br)
		if err != nil {
			return nil, errors.Wrapf(err, "reading loop %d", i)
		}
		loops = append(loops, l)
	}
	return loops, nil
}

// Read one loop and update it.
func DecodeLoop(r io.Reader) (Loop, error) {
	count, err := readCount(r)
	if err != nil {
		return Loop{}, errors.Wrap(err, "reading curve count")
	}
	var l Loop
	for i := 0; i < count; i++ {
		c, err := readCurve(r)
		if err != nil {
			return Loop{}, errors.Wrapf(err, "reading curve %d", i)
		}
		l.Curves = append(l.Curves, c)
	}
	l.Update()
	return l, nil
}

func readCount(r io.Reader) (int, error) {
	var count int32
	if err := binary.Read(r, byteOrder, &count); err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, errors.Errorf("negative count %d", count)
	}
	return int(count), nil
}

func readCurve(r io.Reader) (Curve, error) {
	var kind Kind
	if err := binary.Read(r, byteOrder, &kind); err != nil {
		return nil, err
	}
	switch kind {
	case SegmentKind:
		var f [4]float64
		if err := binary.Read(r, byteOrder, &f); err != nil {
			return nil, err
		}
		return Segment{Start: Point{f[0], f[1]}, End: Point{f[2], f[3]}}, nil
	case ArcKind:
		var f [9]float64
		if err := binary.Read(r, byteOrder, &f); err != nil {
			return nil, err
		}
		var clockwise bool
		if err := binary.Read(r, byteOrder, &clockwise); err != nil {
			return nil, err
		}
		return Arc{
			Start:      Point{f[0], f[1]},
			End:        Point{f[2], f[3]},
			Center:     Point{f[4], f[5]},
			Radius:     f[6],
			StartAngle: f[7],
			EndAngle:   f[8],
			Clockwise:  clockwise,
		}, nil
	}
	return nil, errors.Errorf("unknown curve kind %d", int32(kind))
}

func LoadFile(path string) ([]Loop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	loops, err := Decode(f)
	return loops, errors.Wrapf(err, "loading %s", path)
}

func SaveFile(path string, loops []Loop) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()
	return errors.Wrapf(Encode(f, loops), "saving %s", path)
}
