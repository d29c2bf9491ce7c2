package internal

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a point ring from a text stream. Each non-blank line is one point in
// the form "x;y".
func ReadPoints(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		point, err := parsePoint(line, ";")
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(ErrInputUnavailable, err.Error())
	}
	return points, nil
}

// Read a point ring from the first polygon in an SVG document. This is not a
// full SVG reader: only the "points" attribute of the first <polygon> is used,
// and transforms are ignored.
func ReadSVGPolygon(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon found in svg")
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		point, err := parsePoint(pointString, ",")
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// Open a point file, choosing the reader by extension.
func OpenPoints(path string) ([]Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInputUnavailable, "%s: %v", path, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVGPolygon(file)
	}
	return ReadPoints(file)
}

func parsePoint(s, separator string) (Point, error) {
	parts := strings.Split(s, separator)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}
