package model

import (
	"time"

	geom "github.com/peterstace/simplefeatures/geom"
	"gorm.io/datatypes"
)

// DatabaseModels lists every struct here that maps to a table, in migration
// order.
var DatabaseModels = []interface{}{
	&Truck{},
	&PositionSnapshot{},
	&AlertRecord{},
	&Preference{},
}

// Truck is the registered vehicle row. The live tick state stays in memory;
// this table only carries the slow-changing identity fields.
type Truck struct {
	ID              uint      `json:"id" gorm:"primarykey;autoIncrement;"`
	TruckID         string    `json:"truckId" gorm:"size:64;uniqueIndex:idx_truck_truck_id"`
	Plate           string    `json:"plate" gorm:"size:32"`
	Company         string    `json:"company" gorm:"size:128"`
	TruckType       string    `json:"truckType" gorm:"size:32"`
	Route           string    `json:"route" gorm:"size:128"`
	OriginName      string    `json:"originName" gorm:"size:64"`
	DestinationName string    `json:"destinationName" gorm:"size:64"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (*Truck) TableName() string {
	return "trucks"
}

// PositionSnapshot is one vehicle position at one tick. Position is stored
// as an EPSG:3857 point in WKB so SQLite can hold it as a plain blob.
type PositionSnapshot struct {
	ID       uint       `json:"id" gorm:"primarykey;autoIncrement;"`
	TruckID  string     `json:"truckId" gorm:"size:64;index:idx_snapshot_truck_id"`
	Time     time.Time  `json:"time" gorm:"index:idx_snapshot_time"`
	Position geom.Point `json:"position"`
	Heading  float64    `json:"heading"`
	Speed    float64    `json:"speed"`
	Fuel     float64    `json:"fuel"`
	Battery  float64    `json:"battery"`
	Status   string     `json:"status" gorm:"size:16"`
}

func (*PositionSnapshot) TableName() string {
	return "position_snapshots"
}

// AlertRecord is one emitted alert.
type AlertRecord struct {
	ID       uint      `json:"id" gorm:"primarykey;autoIncrement;"`
	AlertID  string    `json:"alertId" gorm:"size:64;uniqueIndex:idx_alert_alert_id"`
	TruckID  string    `json:"truckId" gorm:"size:64;index:idx_alert_truck_id"`
	Type     string    `json:"type" gorm:"size:16"`
	Severity string    `json:"severity" gorm:"size:16"`
	Message  string    `json:"message" gorm:"size:255"`
	Time     time.Time `json:"time"`
}

func (*AlertRecord) TableName() string {
	return "alert_records"
}

// Preference is the single-row dashboard preferences store, keyed by a
// fixed name with the preferences object as a JSON payload.
type Preference struct {
	ID        uint           `json:"id" gorm:"primarykey;autoIncrement;"`
	Name      string         `json:"name" gorm:"size:64;uniqueIndex:idx_preference_name"`
	Payload   datatypes.JSON `json:"payload"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (*Preference) TableName() string {
	return "preferences"
}
