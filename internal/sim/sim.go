// Package sim advances vehicles along their resolved highway paths, one
// discrete tick at a time. The simulator is pure over its inputs: it never
// mutates the vehicle it is given and returns a partial Update for the
// caller to merge. All randomness flows through a single seeded source so
// runs are reproducible.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ahmed-reda-301/truck-tracker/internal/geo"
	"github.com/ahmed-reda-301/truck-tracker/internal/paths"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

const (
	// speed smoothing and clamps for the highway-following branch
	speedSmoothing = 0.1
	minSpeedKmh    = 30.0
	maxSpeedKmh    = 120.0

	// traffic factor range applied to the segment speed limit
	trafficMin = 0.8
	trafficMax = 1.2

	// fallback branch step range and arrival threshold
	fallbackStepMinKm  = 1.0
	fallbackStepMaxKm  = 3.0
	arrivalThresholdKm = 1.0
)

// Config controls one simulator instance.
type Config struct {
	// TravelWindow is the simulated travel time covered by one tick.
	TravelWindow time.Duration

	// Per-tick emission probabilities for synthetic alerts.
	SpeedAlertProbability float64
	FuelAlertProbability  float64
}

// DefaultConfig returns the reference simulation parameters.
func DefaultConfig() Config {
	return Config{
		TravelWindow:          150 * time.Second,
		SpeedAlertProbability: 0.05,
		FuelAlertProbability:  0.02,
	}
}

// Simulator produces per-vehicle tick updates.
type Simulator struct {
	cfg Config
	rng *rand.Rand
	now func() time.Time
}

// New creates a simulator with a deterministic random source derived from
// seed. The same seed and input sequence reproduces the same updates.
func New(cfg Config, seed int64) *Simulator {
	if cfg.TravelWindow <= 0 {
		cfg.TravelWindow = DefaultConfig().TravelWindow
	}
	return &Simulator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// SetClock overrides the wall clock used for alert and position timestamps.
func (s *Simulator) SetClock(now func() time.Time) {
	s.now = now
}

// Tick computes one simulation step for v. It never fails: a route label
// that matches no registered path degrades to moving directly toward the
// vehicle's destination.
func (s *Simulator) Tick(v core.Vehicle) core.Update {
	var u core.Update
	if p, ok := paths.Resolve(v.Route); ok {
		u = s.followPath(v, p)
	} else {
		u = s.fallback(v)
	}
	u.NewAlerts = s.maybeAlerts(v, u.Speed)
	return u
}

// followPath advances v along its highway: find the nearest waypoint, aim at
// the one after it, smooth speed toward the segment target and move the
// distance coverable within the tick window.
func (s *Simulator) followPath(v core.Vehicle, p *paths.Path) core.Update {
	nearest := p.Nearest(v.Position)
	target := p.NextAfter(nearest)
	targetWp := p.Waypoints[target].Coordinate

	limit, terrain := p.SegmentSpeed(target)
	traffic := trafficMin + s.rng.Float64()*(trafficMax-trafficMin)
	targetSpeed := limit * terrain * traffic

	speed := v.Speed + (targetSpeed-v.Speed)*speedSmoothing
	speed = clamp(speed, minSpeedKmh, maxSpeedKmh)

	coverable := speed * s.cfg.TravelWindow.Hours()
	remaining := geo.Distance(v.Position, targetWp)

	var pos core.Coordinate
	if coverable >= remaining {
		// snap exactly onto the waypoint
		pos = core.Coordinate{Lat: targetWp.Lat, Lng: targetWp.Lng}
	} else {
		pos = geo.Interpolate(v.Position, targetWp, coverable/remaining)
	}
	pos.Timestamp = s.now()

	return core.Update{
		VehicleID: v.ID,
		Position:  pos,
		Heading:   geo.Bearing(v.Position, targetWp),
		Speed:     speed,
		Status:    v.Status,
	}
}

// fallback moves v directly toward its destination in random 1-3 km steps.
// Within 1 km of the destination the trip completes and the vehicle stops.
func (s *Simulator) fallback(v core.Vehicle) core.Update {
	dest := v.Destination.Coordinate
	remaining := geo.Distance(v.Position, dest)

	if remaining < arrivalThresholdKm {
		status := v.Status
		if next, err := v.Status.Transition(core.StatusCompleted); err == nil {
			status = next
		}
		pos := v.Position
		pos.Timestamp = s.now()
		return core.Update{
			VehicleID: v.ID,
			Position:  pos,
			Heading:   v.Heading,
			Speed:     0,
			Status:    status,
		}
	}

	step := fallbackStepMinKm + s.rng.Float64()*(fallbackStepMaxKm-fallbackStepMinKm)
	var pos core.Coordinate
	if step >= remaining {
		pos = core.Coordinate{Lat: dest.Lat, Lng: dest.Lng}
	} else {
		pos = geo.Interpolate(v.Position, dest, step/remaining)
	}
	pos.Timestamp = s.now()

	return core.Update{
		VehicleID: v.ID,
		Position:  pos,
		Heading:   geo.Bearing(v.Position, dest),
		Speed:     v.Speed,
		Status:    v.Status,
	}
}

// maybeAlerts rolls the per-tick alert probabilities. newSpeed is the speed
// the vehicle will have after this tick so speed alerts reflect what the
// dashboard shows.
func (s *Simulator) maybeAlerts(v core.Vehicle, newSpeed float64) []core.Alert {
	var alerts []core.Alert

	if s.rng.Float64() < s.cfg.SpeedAlertProbability {
		severity := core.SeverityInfo
		if newSpeed > 100 {
			severity = core.SeverityWarning
		}
		alerts = append(alerts, core.Alert{
			ID:        s.nextAlertID(),
			VehicleID: v.ID,
			Type:      core.AlertSpeed,
			Severity:  severity,
			Message:   fmt.Sprintf("%s travelling at %.0f km/h", v.Plate, newSpeed),
			Timestamp: s.now(),
		})
	}

	if s.rng.Float64() < s.cfg.FuelAlertProbability {
		severity := core.SeverityInfo
		if v.Fuel < 30 {
			severity = core.SeverityWarning
		}
		alerts = append(alerts, core.Alert{
			ID:        s.nextAlertID(),
			VehicleID: v.ID,
			Type:      core.AlertFuel,
			Severity:  severity,
			Message:   fmt.Sprintf("%s fuel at %.0f%%", v.Plate, v.Fuel),
			Timestamp: s.now(),
		})
	}

	return alerts
}

// nextAlertID draws an identifier from the seeded stream so alert IDs are
// reproducible across runs with the same seed.
func (s *Simulator) nextAlertID() string {
	return fmt.Sprintf("alert-%08x", s.rng.Uint32())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
