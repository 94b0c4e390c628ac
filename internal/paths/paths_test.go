package paths

import (
	"testing"

	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SegmentArraysMatchWaypoints(t *testing.T) {
	for _, p := range All() {
		assert.GreaterOrEqual(t, len(p.Waypoints), 2, "%s needs at least 2 waypoints", p.Key)
		assert.Len(t, p.SpeedLimits, p.Segments(), "%s speed limits", p.Key)
		assert.Len(t, p.TerrainFactors, p.Segments(), "%s terrain factors", p.Key)
	}
}

func TestResolve_ExactKey(t *testing.T) {
	p, ok := Resolve("riyadh-jeddah")
	require.True(t, ok)
	assert.Equal(t, RiyadhJeddah, p.Key)
}

func TestResolve_SubstringOfRouteLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Key
	}{
		{"Riyadh to Jeddah", RiyadhJeddah},
		{"Express Riyadh-Dammam daily", RiyadhDammam},
		{"JEDDAH-MAKKAH shuttle", JeddahMakkah},
		{"south run via Khamis", RiyadhAbha},
	}

	for _, tt := range tests {
		p, ok := Resolve(tt.label)
		require.True(t, ok, "label %q should resolve", tt.label)
		assert.Equal(t, tt.want, p.Key, "label %q", tt.label)
	}
}

func TestResolve_MissReturnsFalse(t *testing.T) {
	for _, label := range []string{"", "unknown route", "tabuk loop"} {
		p, ok := Resolve(label)
		assert.False(t, ok, "label %q should not resolve", label)
		assert.Nil(t, p)
	}
}

func TestNearest_LowestIndexWinsTies(t *testing.T) {
	p, _ := Get(RiyadhJeddah)

	// exactly on the first waypoint
	assert.Equal(t, 0, p.Nearest(p.Waypoints[0].Coordinate))

	// closer to Al-Kharj than to anything else
	near := core.Coordinate{Lat: 24.53, Lng: 46.2}
	assert.Equal(t, 1, p.Nearest(near))
}

func TestNextAfter_ClampsAtPathEnd(t *testing.T) {
	p, _ := Get(JeddahMakkah)
	assert.Equal(t, 1, p.NextAfter(0))
	assert.Equal(t, 2, p.NextAfter(1))
	assert.Equal(t, 2, p.NextAfter(2))
	assert.Equal(t, 2, p.NextAfter(99))
}

func TestSegmentSpeed_Bounds(t *testing.T) {
	p, _ := Get(RiyadhAbha)

	limit, terrain := p.SegmentSpeed(1)
	assert.Equal(t, 120.0, limit)
	assert.Equal(t, 1.0, terrain)

	// target index 0 clamps to the first segment instead of going negative
	limit, _ = p.SegmentSpeed(0)
	assert.Equal(t, 120.0, limit)

	// beyond the last waypoint clamps to the final segment
	limit, terrain = p.SegmentSpeed(10)
	assert.Equal(t, 80.0, limit)
	assert.Equal(t, 0.7, terrain)
}

func TestLengthKm(t *testing.T) {
	p, _ := Get(RiyadhJeddah)

	// Riyadh to Jeddah via the inland waypoints is on the order of 900 km
	assert.InDelta(t, 900, p.LengthKm(), 120)

	for _, path := range All() {
		assert.Greater(t, path.LengthKm(), 50.0, path.Name)
	}
}
