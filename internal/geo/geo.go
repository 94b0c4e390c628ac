package geo

import (
	"math"

	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometers
// (haversine). Pure and total: symmetric, and Distance(a,a) == 0.
func Distance(a, b core.Coordinate) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Bearing returns the initial compass bearing from a to b in degrees,
// normalized to [0,360).
func Bearing(a, b core.Coordinate) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLng := radians(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(latB)
	x := math.Cos(latA)*math.Sin(latB) - math.Sin(latA)*math.Cos(latB)*math.Cos(dLng)

	deg := degrees(math.Atan2(y, x))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Interpolate returns the point fraction of the way from a to b.
// fraction is clamped to [0,1], so 0 returns a and 1 returns b exactly.
func Interpolate(a, b core.Coordinate, fraction float64) core.Coordinate {
	if fraction <= 0 {
		return core.Coordinate{Lat: a.Lat, Lng: a.Lng}
	}
	if fraction >= 1 {
		return core.Coordinate{Lat: b.Lat, Lng: b.Lng}
	}
	return core.Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*fraction,
		Lng: a.Lng + (b.Lng-a.Lng)*fraction,
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
