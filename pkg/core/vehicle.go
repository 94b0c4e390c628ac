// pkg/core/vehicle.go
package core

import "time"

// Coordinate is a WGS84 position. Timestamp is zero for reference data
// (waypoints, origins) and set for live vehicle positions.
type Coordinate struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// NamedPoint is a coordinate with a display name, used for trip origins,
// destinations and path waypoints.
type NamedPoint struct {
	Name string `json:"name"`
	Coordinate
}

// Vehicle represents a tracked truck.
// ID is the fleet identifier, Plate the registration label shown on the map.
type Vehicle struct {
	ID          string     `json:"id"`
	Plate       string     `json:"plate"`
	Company     string     `json:"company"`
	TruckType   string     `json:"truckType"`
	Route       string     `json:"route"`
	Position    Coordinate `json:"position"`
	Heading     float64    `json:"heading"` // degrees [0,360)
	Speed       float64    `json:"speed"`   // km/h
	Fuel        float64    `json:"fuel"`    // percent [0,100]
	Battery     float64    `json:"battery"` // percent [0,100]
	Status      Status     `json:"status"`
	Origin      NamedPoint `json:"origin"`
	Destination NamedPoint `json:"destination"`
	Alerts      []Alert    `json:"alerts"`
}

// HasAlerts reports whether the vehicle carries at least one alert.
func (v *Vehicle) HasAlerts() bool {
	return len(v.Alerts) > 0
}
