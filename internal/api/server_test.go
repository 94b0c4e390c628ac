package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed-reda-301/truck-tracker/internal/fixtures"
	"github.com/ahmed-reda-301/truck-tracker/internal/fleet"
	"github.com/ahmed-reda-301/truck-tracker/internal/sim"
	"github.com/ahmed-reda-301/truck-tracker/internal/storage/memory"
	"github.com/ahmed-reda-301/truck-tracker/internal/worker"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

func newTestServer(t *testing.T) (*Server, *worker.Runner) {
	t.Helper()

	vehicles, err := fixtures.LoadVehicles("")
	require.NoError(t, err)

	store := fleet.NewStore(50)
	store.Load(vehicles)

	backend := memory.New()
	require.NoError(t, backend.RegisterFleet(vehicles))

	runner := worker.NewRunner(worker.Dependencies{
		Store:     store,
		Simulator: sim.New(sim.DefaultConfig(), 11),
		Backend:   backend,
		Logger:    zerolog.Nop(),
	}, time.Hour)

	srv := NewServer(Dependencies{
		Store:   store,
		Backend: backend,
		Runner:  runner,
		Logger:  zerolog.Nop(),
	})
	t.Cleanup(func() { runner.Stop() })
	return srv, runner
}

func doJSON(t *testing.T, srv *Server, method, target, body string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]any
	code := doJSON(t, srv, http.MethodGet, "/healthz", "", &body)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["simRunning"])
	assert.Equal(t, float64(6), body["vehicles"])
}

func TestGetVehicles_Unfiltered(t *testing.T) {
	srv, _ := newTestServer(t)

	var body struct {
		Count    int            `json:"count"`
		Vehicles []core.Vehicle `json:"vehicles"`
	}
	code := doJSON(t, srv, http.MethodGet, "/api/vehicles", "", &body)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 6, body.Count)
	assert.Len(t, body.Vehicles, 6)
}

func TestGetVehicles_Filtered(t *testing.T) {
	srv, _ := newTestServer(t)

	var body struct {
		Count    int            `json:"count"`
		Vehicles []core.Vehicle `json:"vehicles"`
	}
	code := doJSON(t, srv, http.MethodGet, "/api/vehicles?status=stopped", "", &body)
	assert.Equal(t, http.StatusOK, code)
	for _, v := range body.Vehicles {
		assert.Equal(t, core.StatusStopped, v.Status)
	}
	assert.Equal(t, 1, body.Count)

	code = doJSON(t, srv, http.MethodGet, "/api/vehicles?hasAlerts=true", "", &body)
	assert.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "TRK-005", body.Vehicles[0].ID)

	// conjunctive: alerted vehicle is not stopped
	code = doJSON(t, srv, http.MethodGet, "/api/vehicles?hasAlerts=true&status=stopped", "", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, body.Count)
}

func TestGetVehicle(t *testing.T) {
	srv, _ := newTestServer(t)

	var vehicle core.Vehicle
	code := doJSON(t, srv, http.MethodGet, "/api/vehicles/TRK-001", "", &vehicle)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "TRK-001", vehicle.ID)

	var errBody map[string]any
	code = doJSON(t, srv, http.MethodGet, "/api/vehicles/TRK-999", "", &errBody)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, errBody["error"], "TRK-999")
}

func TestGetTrail(t *testing.T) {
	srv, runner := newTestServer(t)

	runner.TickOnce()
	runner.TickOnce()

	var body struct {
		VehicleID string            `json:"vehicleId"`
		Trail     []core.Coordinate `json:"trail"`
	}
	code := doJSON(t, srv, http.MethodGet, "/api/vehicles/TRK-001/trail?limit=1", "", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "TRK-001", body.VehicleID)
	assert.Len(t, body.Trail, 1)

	code = doJSON(t, srv, http.MethodGet, "/api/vehicles/TRK-999/trail", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetStats(t *testing.T) {
	srv, _ := newTestServer(t)

	var stats fleet.Stats
	code := doJSON(t, srv, http.MethodGet, "/api/stats", "", &stats)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.WithAlerts)

	// the same filters as /api/vehicles apply
	code = doJSON(t, srv, http.MethodGet, "/api/stats?company=Bahri+Cargo", "", &stats)
	assert.Equal(t, http.StatusOK, code)
	assert.Less(t, stats.Total, 6)
}

func TestGetAlertStats(t *testing.T) {
	srv, _ := newTestServer(t)

	var stats fleet.AlertStats
	code := doJSON(t, srv, http.MethodGet, "/api/alerts/stats", "", &stats)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, stats[core.AlertFuel].Count)
}

func TestPreferencesRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	var prefs core.Preferences
	code := doJSON(t, srv, http.MethodGet, "/api/preferences", "", &prefs)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "light", prefs.Theme)

	payload := `{"theme":"dark","panelVisible":false,"lastFilter":{"statuses":["moving"]}}`
	code = doJSON(t, srv, http.MethodPut, "/api/preferences", payload, &prefs)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dark", prefs.Theme)

	code = doJSON(t, srv, http.MethodGet, "/api/preferences", "", &prefs)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dark", prefs.Theme)
	assert.False(t, prefs.PanelVisible)
	assert.Equal(t, []core.Status{core.StatusMoving}, prefs.LastFilter.Statuses)
}

func TestPutPreferences_BadPayload(t *testing.T) {
	srv, _ := newTestServer(t)

	code := doJSON(t, srv, http.MethodPut, "/api/preferences", `{"theme":`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSimulationStartStop(t *testing.T) {
	srv, runner := newTestServer(t)

	var body map[string]any
	code := doJSON(t, srv, http.MethodPost, "/api/simulation/start", "", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["simRunning"])
	assert.True(t, runner.IsRunning())

	code = doJSON(t, srv, http.MethodPost, "/api/simulation/start", "", &body)
	assert.Equal(t, http.StatusConflict, code)

	code = doJSON(t, srv, http.MethodPost, "/api/simulation/stop", "", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["simRunning"])
}
