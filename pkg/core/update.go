// pkg/core/update.go
package core

// Update is the partial result of one simulation tick for one vehicle.
// The caller merges it into its copy of the vehicle; the simulator never
// mutates the input.
type Update struct {
	VehicleID string
	Position  Coordinate
	Heading   float64
	Speed     float64
	Status    Status
	NewAlerts []Alert
}

// Apply merges the update into a copy of v and returns it. Appended alerts
// are capped to the most recent alertCap entries when alertCap > 0.
func (u Update) Apply(v Vehicle, alertCap int) Vehicle {
	v.Position = u.Position
	v.Heading = u.Heading
	v.Speed = u.Speed
	v.Status = u.Status
	if len(u.NewAlerts) > 0 {
		// copy-on-write so older snapshots stay untouched
		alerts := make([]Alert, 0, len(v.Alerts)+len(u.NewAlerts))
		alerts = append(alerts, v.Alerts...)
		alerts = append(alerts, u.NewAlerts...)
		v.Alerts = alerts
	}
	if alertCap > 0 && len(v.Alerts) > alertCap {
		trimmed := make([]Alert, alertCap)
		copy(trimmed, v.Alerts[len(v.Alerts)-alertCap:])
		v.Alerts = trimmed
	}
	return v
}
