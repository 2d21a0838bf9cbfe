package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/dbg"
)

// Demo of convex hulls. Input on stdin should be newline separated points in
// the form "x y" (or "x,y"). Blank lines and lines starting with # are ignored.
// The hull is printed along with its area and centroid, and optionally its
// halfspace representation, a rendered PNG, and answers to point queries.

type config struct {
	Order   string
	Queries []string
	HRep    bool
	PNG     string
	Scale   float64
	Show    bool
	Verbose bool
	NoColor bool
}

func main() {
	var cfg config
	app := kingpin.New("convexhull", "Compute the convex hull of points read from stdin.")
	app.Flag("order", "Vertex order of the printed hull.").Default("ccw").EnumVar(&cfg.Order, "ccw", "cw")
	app.Flag("query", `Point "x,y" to test for containment and find the closest hull point to. Repeatable.`).Short('q').StringsVar(&cfg.Queries)
	app.Flag("hrep", "Print the halfspace representation A x ≤ b.").BoolVar(&cfg.HRep)
	app.Flag("png", "Render the hull and input points to this PNG file.").StringVar(&cfg.PNG)
	app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64Var(&cfg.Scale)
	app.Flag("show", "Display the rendering inline in the terminal.").BoolVar(&cfg.Show)
	app.Flag("verbose", "Label hull vertices with readable names.").Short('v').BoolVar(&cfg.Verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&cfg.NoColor)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, in io.Reader, out io.Writer) error {
	if cfg.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", cfg.Scale)
	}
	queries := make([]convexhull.Point, 0, len(cfg.Queries))
	for _, q := range cfg.Queries {
		p, err := parsePoint(q)
		if err != nil {
			return errors.Wrap(err, "invalid query")
		}
		queries = append(queries, p)
	}

	points, err := readPoints(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Read %d points\n", len(points))

	hull, err := convexhull.Compute(points...)
	if err != nil {
		return err
	}
	if cfg.Order == "cw" {
		hull = hull.Reversed()
	}

	au := aurora.NewAurora(!cfg.NoColor)
	report(out, au, hull, cfg)
	for _, q := range queries {
		reportQuery(out, au, hull, q)
	}

	if cfg.PNG == "" && cfg.Show {
		cfg.PNG = filepath.Join(os.TempDir(), "convexhull.png")
	}
	if cfg.PNG != "" {
		if err := hull.DrawPNG(cfg.PNG, points, cfg.Scale); err != nil {
			return errors.Wrapf(err, "rendering %s", cfg.PNG)
		}
		fmt.Fprintf(out, "Rendered %s\n", cfg.PNG)
		if cfg.Show {
			if err := imgcat.CatFile(cfg.PNG, out); err != nil {
				return errors.Wrapf(err, "displaying %s", cfg.PNG)
			}
		}
	}
	return nil
}

func report(out io.Writer, au aurora.Aurora, hull *convexhull.ConvexHull, cfg config) {
	fmt.Fprintf(out, "%s (%s, %d vertices)\n", au.Bold("Hull"), hull.Order(), hull.NumVertices())
	for _, v := range hull.Vertices() {
		if cfg.Verbose {
			fmt.Fprintf(out, "  %s %s\n", formatPoint(v), au.Cyan(dbg.Name(v)))
		} else {
			fmt.Fprintf(out, "  %s\n", formatPoint(v))
		}
	}

	fmt.Fprintf(out, "%s %g\n", au.Bold("Area:"), hull.Area())
	if centroid, err := hull.Centroid(); err != nil {
		fmt.Fprintf(out, "%s %s\n", au.Bold("Centroid:"), au.Yellow(err.Error()))
	} else {
		fmt.Fprintf(out, "%s %s\n", au.Bold("Centroid:"), formatPoint(centroid))
	}

	if cfg.HRep {
		A, b, err := hull.HRep()
		if err != nil {
			fmt.Fprintf(out, "%s %s\n", au.Bold("HRep:"), au.Yellow(err.Error()))
			return
		}
		fmt.Fprintf(out, "%s\n", au.Bold("HRep:"))
		for i := 0; i < b.Len(); i++ {
			fmt.Fprintf(out, "  %g x + %g y ≤ %g\n", A.At(i, 0), A.At(i, 1), b.AtVec(i))
		}
	}
}

func reportQuery(out io.Writer, au aurora.Aurora, hull *convexhull.ConvexHull, q convexhull.Point) {
	if hull.Contains(q) {
		fmt.Fprintf(out, "Query %s: %s\n", formatPoint(q), au.Green("inside"))
		return
	}
	closest, err := hull.ClosestPoint(q)
	if err != nil {
		fmt.Fprintf(out, "Query %s: %s (%s)\n", formatPoint(q), au.Red("outside"), err)
		return
	}
	fmt.Fprintf(out, "Query %s: %s, closest point %s at distance %g\n",
		formatPoint(q), au.Red("outside"), formatPoint(closest), q.DistanceTo(closest))
}

func formatPoint(p convexhull.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func readPoints(in io.Reader) ([]convexhull.Point, error) {
	points := []convexhull.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(s string) (convexhull.Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 2 {
		return convexhull.Point{}, errors.Errorf("invalid point %q: want two coordinates", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return convexhull.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return convexhull.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return convexhull.Point{X: x, Y: y}, nil
}
