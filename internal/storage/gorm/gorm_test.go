package gormstorage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmed-reda-301/truck-tracker/internal/database"
	"github.com/ahmed-reda-301/truck-tracker/internal/storage"
	gormstorage "github.com/ahmed-reda-301/truck-tracker/internal/storage/gorm"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface check
var _ storage.Backend = (*gormstorage.Backend)(nil)

func newTestBackend(t *testing.T) *gormstorage.Backend {
	t.Helper()

	mgr := database.NewManager(zerolog.Nop(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, mgr.ConnectSqlite())

	b := gormstorage.New(mgr)
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func fleet() []core.Vehicle {
	return []core.Vehicle{
		{
			ID: "TRK-001", Plate: "RUH 4821", Company: "Aramex Logistics",
			TruckType: "container", Route: "Riyadh to Jeddah",
			Origin:      core.NamedPoint{Name: "Riyadh", Coordinate: core.Coordinate{Lat: 24.7136, Lng: 46.6753}},
			Destination: core.NamedPoint{Name: "Jeddah", Coordinate: core.Coordinate{Lat: 21.4858, Lng: 39.1925}},
			Position:    core.Coordinate{Lat: 24.7136, Lng: 46.6753, Timestamp: time.Now().UTC()},
			Status:      core.StatusMoving,
		},
	}
}

func TestBackend_RegisterFleetIdempotent(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.RegisterFleet(fleet()))
	// re-registering the same fleet upserts instead of failing
	require.NoError(t, b.RegisterFleet(fleet()))
}

func TestBackend_SnapshotTrailRoundTrip(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, b.RegisterFleet(fleet()))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		v := fleet()[0]
		v.Position = core.Coordinate{
			Lat:       24.7136 - float64(i)*0.01,
			Lng:       46.6753 - float64(i)*0.01,
			Timestamp: base.Add(time.Duration(i) * 3 * time.Second),
		}
		require.NoError(t, b.RecordSnapshots([]core.Vehicle{v}))
	}

	trail, err := b.Trail("TRK-001", 2)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	// newest first, and the projection round trip keeps coordinates close
	assert.InDelta(t, 24.7136-0.03, trail[0].Lat, 1e-5)
	assert.InDelta(t, 24.7136-0.02, trail[1].Lat, 1e-5)
}

func TestBackend_TrailUnknownVehicle(t *testing.T) {
	b := newTestBackend(t)

	trail, err := b.Trail("TRK-404", 10)
	require.NoError(t, err)
	assert.Empty(t, trail)
}

func TestBackend_AlertsIgnoreDuplicates(t *testing.T) {
	b := newTestBackend(t)

	alert := core.Alert{
		ID: "alert-0000cafe", VehicleID: "TRK-001",
		Type: core.AlertSpeed, Severity: core.SeverityWarning,
		Message: "RUH 4821 travelling at 112 km/h", Timestamp: time.Now().UTC(),
	}
	require.NoError(t, b.RecordAlerts([]core.Alert{alert}))
	require.NoError(t, b.RecordAlerts([]core.Alert{alert}))
}

func TestBackend_PreferencesRoundTrip(t *testing.T) {
	b := newTestBackend(t)

	prefs, err := b.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultPreferences(), prefs)

	saved := core.Preferences{
		Theme:        "dark",
		PanelVisible: true,
		LastFilter: core.FilterCriteria{
			Statuses: []core.Status{core.StatusMoving},
		},
	}
	require.NoError(t, b.SavePreferences(saved))
	// second save exercises the upsert path
	saved.Theme = "light"
	require.NoError(t, b.SavePreferences(saved))

	prefs, err = b.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, saved, prefs)
}
