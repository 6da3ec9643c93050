// Command polyclip runs scenario files through the classifier, intersector and
// clipper and prints or draws the results.
//
//	polyclip run scenario.yaml
//	polyclip clip --type float scenario.svg
//	polyclip draw --png out.png --show scenario.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/draw"
	"github.com/osuushi/polyclip/scenario"
	"gopkg.in/alecthomas/kingpin.v2"
)

var formatNames = func() []string {
	names := make([]string, len(scenario.Formats))
	for i, f := range scenario.Formats {
		names[i] = string(f)
	}
	return names
}()

type options struct {
	file    string
	format  string
	coords  string
	debug   bool
	color   bool
	verbose bool
	geojson bool
	png     string
	show    bool
	scale   float64
}

func main() {
	app := kingpin.New("polyclip", "Classify points against a polygon, intersect segments and clip paths.")
	var opts options
	app.Flag("format", "Scenario file format.").Default(string(scenario.Auto)).EnumVar(&opts.format, formatNames...)
	app.Flag("type", "Coordinate type to run with. Defaults to the scenario's own, then int.").EnumVar(&opts.coords, string(scenario.Int), string(scenario.Float))
	app.Flag("debug", "Log debug output to stderr.").BoolVar(&opts.debug)
	app.Flag("color", "Color the output.").Default("true").BoolVar(&opts.color)
	app.Flag("verbose", "Dump the loaded scenario to stderr.").Short('v').BoolVar(&opts.verbose)

	classify := app.Command("classify", "Classify the scenario's query points.")
	intersect := app.Command("intersect", "Intersect the scenario's segment pairs.")
	clip := app.Command("clip", "Clip the scenario's paths.")
	run := app.Command("run", "Run every case in the scenario.")
	run.Flag("geojson", "Print the report as GeoJSON.").BoolVar(&opts.geojson)
	drawCmd := app.Command("draw", "Render the scenario report to a PNG.")
	drawCmd.Flag("png", "Output file.").Default("polyclip.png").StringVar(&opts.png)
	drawCmd.Flag("show", "Show the image inline in the terminal.").BoolVar(&opts.show)
	drawCmd.Flag("scale", "Pixels per coordinate unit.").Default(fmt.Sprint(draw.DefaultScale)).Float64Var(&opts.scale)

	for _, cmd := range []*kingpin.CmdClause{classify, intersect, clip, run, drawCmd} {
		cmd.Arg("file", "Scenario file.").Required().ExistingFileVar(&opts.file)
	}

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	setupLogging(opts.debug)

	s, err := scenario.LoadFile(opts.file, scenario.Format(opts.format))
	app.FatalIfError(err, "")
	if opts.verbose {
		pretty.Fprintf(os.Stderr, "%# v\n", s)
	}

	coords := scenario.CoordType(opts.coords)
	if coords == scenario.Unspecified {
		coords = s.Type
	}
	if coords == scenario.Float {
		err = execute[float64](os.Stdout, command, s, opts)
	} else {
		err = execute[int](os.Stdout, command, s, opts)
	}
	app.FatalIfError(err, "")
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	polyclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func execute[T polyclip.Scalar](w io.Writer, command string, s *scenario.Scenario, opts options) error {
	report := scenario.Run[T](s)
	p := printer[T]{w: w, au: aurora.NewAurora(opts.color)}

	switch command {
	case "classify":
		p.polygon(report)
		p.points(report)
	case "intersect":
		p.segments(report)
	case "clip":
		p.polygon(report)
		p.paths(report)
	case "run":
		if opts.geojson {
			data, err := report.GeoJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
		p.polygon(report)
		p.points(report)
		p.segments(report)
		p.paths(report)
	case "draw":
		if err := draw.SavePNG(report, opts.scale, opts.png); err != nil {
			return err
		}
		if opts.show {
			return draw.Show(opts.png, w)
		}
		fmt.Fprintf(w, "wrote %s\n", opts.png)
	}
	return p.err
}
