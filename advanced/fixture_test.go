package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, and returns its points in document order. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

const Epsilon = 1e-9

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// Some ad hoc generated fixtures

func RegularPolygon(n int, radius float64, center Point) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = center.Add(Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// Random points with integer coordinates in [-size, size]. Integer coordinates
// keep every cross product exact, so results can be compared exactly.
func RandomIntegerPoints(rng *rand.Rand, n, size int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: float64(rng.Intn(2*size+1) - size),
			Y: float64(rng.Intn(2*size+1) - size),
		}
	}
	return points
}

func Shuffled(rng *rand.Rand, points []Point) []Point {
	result := append([]Point(nil), points...)
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// Helper to check that actual is the same cycle of points as expected, up to
// the choice of starting vertex.
func AssertSameCycle(t *testing.T, expected, actual []Point) {
	t.Helper()
	require.Len(t, actual, len(expected))
	if len(expected) == 0 {
		return
	}
	offset := -1
	for i, p := range actual {
		if p == expected[0] {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "%v does not appear in %v", expected[0], actual)
	for i, p := range expected {
		assert.Equal(t, p, actual[CircularIndex(i+offset, len(actual))], "vertex %d", i)
	}
}

func AssertPointInDelta(t *testing.T, expected, actual Point) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, Epsilon, "x of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, Epsilon, "y of %v", actual)
}

func TestLoadFixture(t *testing.T) {
	points := LoadFixture("square_cloud")
	assert.Len(t, points, 13)
	assert.Equal(t, Point{X: 0, Y: 0}, points[0])
	assert.Equal(t, Point{X: 100, Y: 0}, points[12])
}
