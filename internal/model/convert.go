package model

import (
	"github.com/ahmed-reda-301/truck-tracker/internal/geo"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// TruckFromVehicle maps a domain vehicle onto its registration row.
func TruckFromVehicle(v core.Vehicle) Truck {
	return Truck{
		TruckID:         v.ID,
		Plate:           v.Plate,
		Company:         v.Company,
		TruckType:       v.TruckType,
		Route:           v.Route,
		OriginName:      v.Origin.Name,
		DestinationName: v.Destination.Name,
	}
}

// SnapshotFromVehicle captures the vehicle's tick state as a snapshot row.
func SnapshotFromVehicle(v core.Vehicle) PositionSnapshot {
	return PositionSnapshot{
		TruckID:  v.ID,
		Time:     v.Position.Timestamp,
		Position: geo.Point3857(v.Position),
		Heading:  v.Heading,
		Speed:    v.Speed,
		Fuel:     v.Fuel,
		Battery:  v.Battery,
		Status:   string(v.Status),
	}
}

// CoordinateFromSnapshot recovers the WGS84 coordinate of a snapshot row.
func CoordinateFromSnapshot(s PositionSnapshot) core.Coordinate {
	c := geo.Coordinate4326(s.Position)
	c.Timestamp = s.Time
	return c
}

// AlertRecordFromAlert maps a domain alert onto its table row.
func AlertRecordFromAlert(a core.Alert) AlertRecord {
	return AlertRecord{
		AlertID:  a.ID,
		TruckID:  a.VehicleID,
		Type:     string(a.Type),
		Severity: string(a.Severity),
		Message:  a.Message,
		Time:     a.Timestamp,
	}
}

// AlertFromRecord is the inverse of AlertRecordFromAlert.
func AlertFromRecord(r AlertRecord) core.Alert {
	return core.Alert{
		ID:        r.AlertID,
		VehicleID: r.TruckID,
		Type:      core.AlertType(r.Type),
		Severity:  core.Severity(r.Severity),
		Message:   r.Message,
		Timestamp: r.Time,
	}
}
