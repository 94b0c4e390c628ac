package geo

import (
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// Snapshot coordinates are persisted as EPSG:3857 points in WKB so SQLite,
// which has no spatial awareness, can round-trip them as plain blobs.

// Point3857 projects a WGS84 coordinate to a web-mercator point.
func Point3857(c core.Coordinate) geom.Point {
	f := wgs84.EPSG().Transform(4326, 3857)
	x, y, _ := f(c.Lng, c.Lat, 0)
	return geom.NewPoint(geom.Coordinates{
		XY: geom.XY{X: x, Y: y},
	})
}

// Coordinate4326 inverts Point3857 back to a WGS84 coordinate.
// An empty point maps to the zero coordinate.
func Coordinate4326(p geom.Point) core.Coordinate {
	xy, ok := p.XY()
	if !ok {
		return core.Coordinate{}
	}
	f := wgs84.EPSG().Transform(3857, 4326)
	lng, lat, _ := f(xy.X, xy.Y, 0)
	return core.Coordinate{Lat: lat, Lng: lng}
}
