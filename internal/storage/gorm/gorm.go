// Package gormstorage implements the storage.Backend interface on top of a
// GORM database connection. The same backend serves SQLite and Postgres;
// dialect selection happens in the database manager.
package gormstorage

import (
	"encoding/json"
	"fmt"

	"github.com/ahmed-reda-301/truck-tracker/internal/database"
	"github.com/ahmed-reda-301/truck-tracker/internal/model"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// Backend persists tick output through GORM.
type Backend struct {
	mgr *database.Manager
}

// New creates a new GORM storage backend over an established connection.
func New(mgr *database.Manager) *Backend {
	return &Backend{mgr: mgr}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	return b.mgr.Setup()
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.mgr.Close()
}

// RegisterFleet upserts the truck registration rows.
func (b *Backend) RegisterFleet(vehicles []core.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	trucks := make([]model.Truck, len(vehicles))
	for i, v := range vehicles {
		trucks[i] = model.TruckFromVehicle(v)
	}
	err := b.mgr.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "truck_id"}},
		UpdateAll: true,
	}).Create(&trucks).Error
	if err != nil {
		return fmt.Errorf("registering fleet: %w", err)
	}
	return nil
}

// RecordSnapshots batch-inserts one snapshot row per vehicle.
func (b *Backend) RecordSnapshots(vehicles []core.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	rows := make([]model.PositionSnapshot, len(vehicles))
	for i, v := range vehicles {
		rows[i] = model.SnapshotFromVehicle(v)
	}
	if err := b.mgr.DB.Create(&rows).Error; err != nil {
		return fmt.Errorf("recording snapshots: %w", err)
	}
	return nil
}

// RecordAlerts batch-inserts emitted alerts. Replays of an already recorded
// alert id are ignored.
func (b *Backend) RecordAlerts(alerts []core.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	rows := make([]model.AlertRecord, len(alerts))
	for i, a := range alerts {
		rows[i] = model.AlertRecordFromAlert(a)
	}
	err := b.mgr.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("recording alerts: %w", err)
	}
	return nil
}

// Trail returns the most recent recorded coordinates for a vehicle, newest
// first.
func (b *Backend) Trail(vehicleID string, limit int) ([]core.Coordinate, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []model.PositionSnapshot
	err := b.mgr.DB.
		Where("truck_id = ?", vehicleID).
		Order("time DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading trail for %s: %w", vehicleID, err)
	}

	coords := make([]core.Coordinate, len(rows))
	for i, row := range rows {
		coords[i] = model.CoordinateFromSnapshot(row)
	}
	return coords, nil
}

// SavePreferences upserts the single preferences row.
func (b *Backend) SavePreferences(p core.Preferences) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	row := model.Preference{
		Name:    preferencesKey,
		Payload: datatypes.JSON(payload),
	}
	err = b.mgr.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// LoadPreferences reads the preferences row, returning defaults when none
// exists yet.
func (b *Backend) LoadPreferences() (core.Preferences, error) {
	var row model.Preference
	err := b.mgr.DB.Where("name = ?", preferencesKey).First(&row).Error
	if err != nil {
		// missing row is the first-run case, not a failure
		return core.DefaultPreferences(), nil
	}

	var p core.Preferences
	if err := json.Unmarshal(row.Payload, &p); err != nil {
		return core.DefaultPreferences(), fmt.Errorf("decoding preferences: %w", err)
	}
	return p, nil
}

// preferencesKey mirrors storage.PreferencesKey; duplicated to avoid an
// import cycle with the interface package.
const preferencesKey = "dashboard"
