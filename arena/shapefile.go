// Package arena loads static obstacle layouts. Obstacles are drawn in any GIS
// tool and saved as an ESRI shapefile; each shape becomes the rectangle of its
// bounding box, fitted onto the window.
package arena

import (
	"errors"
	"fmt"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/spritekit/body"
)

// ErrEmpty is returned for shapefiles without any shapes
var ErrEmpty = errors.New("shapefile has no shapes")

// ReadBoxes returns the bounding box of every shape in the file at path
func ReadBoxes(path string) ([]Box, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	var boxes []Box
	for r.Next() {
		_, shape := r.Shape()
		if shape == nil {
			continue
		}
		bb := shape.BBox()
		boxes = append(boxes, Box{MinX: bb.MinX, MinY: bb.MinY, MaxX: bb.MaxX, MaxY: bb.MaxY})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	if len(boxes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return boxes, nil
}

// LoadShapefile reads the shapes in path and returns them as screen
// rectangles fitted into a width x height window with the given margin.
// Files in longitude/latitude are projected to Web Mercator first so the
// layout keeps the proportions it has on a web map.
func LoadShapefile(path string, width, height, margin float64) ([]body.Rect, error) {
	boxes, err := ReadBoxes(path)
	if err != nil {
		return nil, err
	}
	if Geographic(boxes) {
		for i, b := range boxes {
			boxes[i] = ProjectBox(b)
		}
	}
	return Place(boxes, width, height, margin), nil
}

// Place fits boxes onto the screen as a group, keeping their relative layout
func Place(boxes []Box, width, height, margin float64) []body.Rect {
	if len(boxes) == 0 {
		return nil
	}
	extent := boxes[0]
	for _, b := range boxes[1:] {
		extent = extent.Extend(b)
	}

	fit := NewFit(extent, width, height, margin)
	rects := make([]body.Rect, len(boxes))
	for i, b := range boxes {
		rects[i] = fit.Rect(b)
	}
	return rects
}
