package worker

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmed-reda-301/truck-tracker/internal/fleet"
	"github.com/ahmed-reda-301/truck-tracker/internal/influx"
	"github.com/ahmed-reda-301/truck-tracker/internal/queue"
	"github.com/ahmed-reda-301/truck-tracker/internal/storage"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// ErrAlreadyRunning is returned when Start is called on a running runner.
var ErrAlreadyRunning = fmt.Errorf("simulation already running")

// Dependencies holds everything the runner needs. Metrics may be nil when
// InfluxDB is disabled.
type Dependencies struct {
	Store     *fleet.Store
	Simulator fleet.Ticker
	Backend   storage.Backend
	Metrics   *influx.Manager
	Logger    zerolog.Logger
}

// Runner drives the simulation clock: every interval it ticks the fleet
// store, buffers the output and flushes it to the storage backend. Stopping
// the timer is the only cancellation primitive; a tick always completes for
// all vehicles.
type Runner struct {
	deps     Dependencies
	interval time.Duration

	snapshots *queue.Buffer[core.Vehicle]
	alerts    *queue.Buffer[core.Alert]

	mu               sync.RWMutex
	running          bool
	stopChan         chan struct{}
	lastTickDuration time.Duration
}

// NewRunner creates a runner ticking at the given interval.
func NewRunner(deps Dependencies, interval time.Duration) *Runner {
	return &Runner{
		deps:      deps,
		interval:  interval,
		snapshots: queue.NewBuffer[core.Vehicle](),
		alerts:    queue.NewBuffer[core.Alert](),
	}
}

// IsRunning reports whether the simulation timer is active.
func (r *Runner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// LastTickDuration returns how long the most recent tick took.
func (r *Runner) LastTickDuration() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastTickDuration
}

// QueueLengths returns the current write-buffer depths for monitoring.
func (r *Runner) QueueLengths() (snapshots, alerts int) {
	return r.snapshots.Len(), r.alerts.Len()
}

// Start launches the timer goroutine.
func (r *Runner) Start() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.running = true
	r.stopChan = make(chan struct{})
	stop := r.stopChan
	r.mu.Unlock()

	r.deps.Logger.Info().Dur("interval", r.interval).Msg("Simulation started")

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.TickOnce()
			}
		}
	}()
	return nil
}

// Stop halts the timer. Safe to call when not running.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	close(r.stopChan)
	r.deps.Logger.Info().Msg("Simulation stopped")
}

// TickOnce runs a single simulation tick: advance the fleet, buffer the
// output, flush to storage and publish metrics. Storage failures are logged
// and the simulation keeps going; the in-memory state is authoritative.
func (r *Runner) TickOnce() {
	started := time.Now()

	snapshot, updates := r.deps.Store.Tick(r.deps.Simulator)

	for _, u := range updates {
		if v, ok := findVehicle(snapshot, u.VehicleID); ok {
			r.snapshots.Push(v)
		}
		if len(u.NewAlerts) > 0 {
			r.alerts.Push(u.NewAlerts...)
		}
	}

	r.flush()

	elapsed := time.Since(started)
	r.mu.Lock()
	r.lastTickDuration = elapsed
	r.mu.Unlock()

	if r.deps.Metrics != nil {
		stats := fleet.ComputeStats(snapshot)
		if err := r.deps.Metrics.WriteTickStats(stats, elapsed, started); err != nil {
			r.deps.Logger.Debug().Err(err).Msg("Failed to publish tick metrics")
		}
	}

	r.deps.Logger.Debug().
		Int("vehicles", len(snapshot)).
		Int("updated", len(updates)).
		Dur("duration", elapsed).
		Msg("Tick complete")
}

// flush drains the write buffers into the storage backend.
func (r *Runner) flush() {
	if snaps := r.snapshots.Drain(); len(snaps) > 0 {
		if err := r.deps.Backend.RecordSnapshots(snaps); err != nil {
			r.deps.Logger.Error().Err(err).Msg("Failed to record position snapshots")
		}
	}
	if alerts := r.alerts.Drain(); len(alerts) > 0 {
		if err := r.deps.Backend.RecordAlerts(alerts); err != nil {
			r.deps.Logger.Error().Err(err).Msg("Failed to record alerts")
		}
	}
}

func findVehicle(vehicles []core.Vehicle, id string) (core.Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return core.Vehicle{}, false
}
