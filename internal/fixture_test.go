package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is an SVG whose first polygon is the point ring. If anything goes wrong
// loading one, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ReadSVGPolygon(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// Some ad hoc fixtures

func RegularPolygon(n int, radius float64) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A circle of points with every fourth point pulled in towards the center.
func DentedCircle(n int, radius, dent float64) []Point {
	points := RegularPolygon(n, radius)
	for i := 0; i < n; i += 4 {
		points[i].X *= dent
		points[i].Y *= dent
	}
	return points
}

func EquilateralTriangle(side float64) []Point {
	return []Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side / 2, Y: side * math.Sqrt(3) / 2},
	}
}
