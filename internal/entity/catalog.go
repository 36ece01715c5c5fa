package entity

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CatalogShape is one polygon template from the asteroid shape data:
// local-space vertex coordinates plus the default scale used by a
// medium asteroid of that shape.
type CatalogShape struct {
	Coords       []float64
	DefaultScale float64
}

// Catalog is the immutable set of asteroid shape templates, loaded once
// at startup and shared by every asteroid factory. Replaces the
// load-on-first-use global of older builds with an explicitly owned
// object.
type Catalog struct {
	shapes []CatalogShape
}

// LoadCatalog parses the line-oriented shape data: one polygon per
// line, space-separated floats, all but the last value being vertex
// coordinate pairs and the last the default scale. Any malformed line
// is a fatal error.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var shapes []CatalogShape

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		values := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("shape catalog line %d: bad number %q: %w", lineNum, f, err)
			}
			values[i] = v
		}

		// Vertex values (all but the trailing scale) must form at
		// least three (x, y) pairs.
		if len(values) < 7 || len(values)%2 != 1 {
			return nil, fmt.Errorf("shape catalog line %d: want an even number of coordinates (>= 6) plus a scale, got %d values", lineNum, len(values))
		}

		shapes = append(shapes, CatalogShape{
			Coords:       values[:len(values)-1],
			DefaultScale: values[len(values)-1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading shape catalog: %w", err)
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("shape catalog is empty")
	}

	return &Catalog{shapes: shapes}, nil
}

// Len returns the number of shape templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// Shape returns the template at the given index.
func (c *Catalog) Shape(i int) CatalogShape {
	return c.shapes[i]
}
