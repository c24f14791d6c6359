package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osuushi/contour"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the contour kernel. Scenes are read and written
// in the binary scene format; SVG files can be imported into it.
var (
	app        = kingpin.New("contour", "Offset, merge and inspect segment/arc contours.")
	configPath = app.Flag("config", "YAML config file.").Short('c').String()
	verbose    = app.Flag("verbose", "Log offset and merge passes to stderr.").Short('v').Bool()

	offsetCmd      = app.Command("offset", "Offset every loop of a scene.")
	offsetInput    = offsetCmd.Arg("input", "Scene file to read.").Required().ExistingFile()
	offsetOutput   = offsetCmd.Arg("output", "Scene file to write.").Required().String()
	offsetDistance = offsetCmd.Flag("distance", "Signed offset distance. Positive grows solids.").Short('d').Required().Float64()
	offsetSteps    = offsetCmd.Flag("steps", "Number of offset passes. Overrides the config.").Int()

	mergeCmd    = app.Command("merge", "Merge the loops of a scene into their union.")
	mergeInput  = mergeCmd.Arg("input", "Scene file to read.").Required().ExistingFile()
	mergeOutput = mergeCmd.Arg("output", "Scene file to write.").Required().String()

	renderCmd    = app.Command("render", "Draw a scene to a PNG file.")
	renderInput  = renderCmd.Arg("input", "Scene file to read.").Required().ExistingFile()
	renderOutput = renderCmd.Arg("output", "PNG file to write.").Required().String()
	renderScale  = renderCmd.Flag("scale", "Pixels per unit. Overrides the config.").Float64()

	infoCmd   = app.Command("info", "Describe the loops of a scene.")
	infoInput = infoCmd.Arg("input", "Scene file to read.").Required().ExistingFile()

	snapCmd   = app.Command("snap", "Find the snap point nearest to a position.")
	snapInput = snapCmd.Arg("input", "Scene file to read.").Required().ExistingFile()
	snapX     = snapCmd.Arg("x", "X coordinate.").Required().Float64()
	snapY     = snapCmd.Arg("y", "Y coordinate.").Required().Float64()

	svgCmd    = app.Command("svg", "Import polygons, rects and circles from an SVG file.")
	svgInput  = svgCmd.Arg("input", "SVG file to read.").Required().ExistingFile()
	svgOutput = svgCmd.Arg("output", "Scene file to write.").Required().String()
	svgMerge  = svgCmd.Flag("merge", "Merge the imported loops.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	config, err := LoadConfig(*configPath)
	app.FatalIfError(err, "")

	switch command {
	case offsetCmd.FullCommand():
		err = runOffset(config)
	case mergeCmd.FullCommand():
		err = runMerge()
	case renderCmd.FullCommand():
		err = runRender(config)
	case infoCmd.FullCommand():
		err = runInfo(os.Stdout)
	case snapCmd.FullCommand():
		err = runSnap(os.Stdout, config)
	case svgCmd.FullCommand():
		err = runSVG()
	}
	app.FatalIfError(err, "%s", command)
}

func runOffset(config Config) error {
	loops, err := contour.LoadFile(*offsetInput)
	if err != nil {
		return err
	}
	opts := config.Options()
	if *offsetSteps > 0 {
		opts.OffsetSteps = *offsetSteps
	}
	result, err := contour.OffsetScene(loops, *offsetDistance, opts)
	if err != nil {
		return errors.Wrap(err, "offsetting")
	}
	return contour.SaveFile(*offsetOutput, result)
}

func runMerge() error {
	loops, err := contour.LoadFile(*mergeInput)
	if err != nil {
		return err
	}
	result, err := contour.Merge(loops)
	if err != nil {
		return errors.Wrap(err, "merging")
	}
	return contour.SaveFile(*mergeOutput, result)
}

func runRender(config Config) error {
	loops, err := contour.LoadFile(*renderInput)
	if err != nil {
		return err
	}
	opts := config.RenderOptions()
	if *renderScale > 0 {
		opts.Scale = *renderScale
	}
	return contour.SavePNG(*renderOutput, loops, opts)
}

func runInfo(w io.Writer) error {
	loops, err := contour.LoadFile(*infoInput)
	if err != nil {
		return err
	}
	describe(w, loops)
	return nil
}

func describe(w io.Writer, loops []contour.Loop) {
	fmt.Fprintf(w, "%d loops\n", len(loops))
	for i := range loops {
		l := &loops[i]
		state := "incomplete"
		if l.Completed {
			state = "hole"
			if l.Positive {
				state = "solid"
			}
		}
		fmt.Fprintf(w, "%d: %s, %d curves, area %.6g\n", i, state, l.Len(), l.Area())
	}
}

func runSnap(w io.Writer, config Config) error {
	loops, err := contour.LoadFile(*snapInput)
	if err != nil {
		return err
	}
	scene := contour.NewScene(config.Options())
	scene.Loops = loops
	p, ok := scene.Snap(contour.Point{X: *snapX, Y: *snapY}, config.SnapRadius)
	if !ok {
		return errors.Errorf("no snap point within %g", config.SnapRadius)
	}
	fmt.Fprintln(w, p)
	return nil
}

func runSVG() error {
	f, err := os.Open(*svgInput)
	if err != nil {
		return errors.Wrapf(err, "opening %s", *svgInput)
	}
	defer f.Close()
	loops, err := contour.ImportSVG(f)
	if err != nil {
		return err
	}
	if *svgMerge {
		if loops, err = contour.Merge(loops); err != nil {
			return errors.Wrap(err, "merging")
		}
	}
	return contour.SaveFile(*svgOutput, loops)
}
