package arena

import "math"

// Constants for Web Mercator projection
const (
	maxLat      = 85.0511 // Maximum latitude in Web Mercator (arctan(sinh(π)))
	minLat      = -85.0511
	degToRad    = math.Pi / 180.0
	earthRadius = 6378137.0 // meters, EPSG:3857 sphere
)

// LonLatToWebMercator converts WGS84 coordinates to Web Mercator
// (EPSG:3857) meters.
//
// Parameters:
//   - lon: Longitude in degrees (-180 to 180)
//   - lat: Latitude in degrees (clamped to -85.0511 to 85.0511)
//
// Returns:
//   - x: X coordinate in meters
//   - y: Y coordinate in meters, growing northwards
func LonLatToWebMercator(lon, lat float64) (x, y float64) {
	// Clamp latitude using direct comparison
	if lat > maxLat {
		lat = maxLat
	} else if lat < minLat {
		lat = minLat
	}

	x = earthRadius * lon * degToRad

	sinLat := math.Sin(lat * degToRad)
	y = earthRadius * 0.5 * math.Log((1.0+sinLat)/(1.0-sinLat))
	return x, y
}

// Geographic reports whether every box lies within longitude/latitude
// range, which is how unprojected shapefiles store their coordinates
func Geographic(boxes []Box) bool {
	if len(boxes) == 0 {
		return false
	}
	for _, b := range boxes {
		if b.MinX < -180 || b.MaxX > 180 || b.MinY < -90 || b.MaxY > 90 {
			return false
		}
	}
	return true
}

// ProjectBox converts a longitude/latitude box to Web Mercator. The
// projection is monotonic on each axis, so projecting the corners is exact.
func ProjectBox(b Box) Box {
	minX, minY := LonLatToWebMercator(b.MinX, b.MinY)
	maxX, maxY := LonLatToWebMercator(b.MaxX, b.MaxY)
	return Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
