// internal/monitor/monitor.go
package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmed-reda-301/truck-tracker/internal/fleet"
	"github.com/ahmed-reda-301/truck-tracker/internal/worker"
)

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	Store     *fleet.Store
	Runner    *worker.Runner
	Logger    zerolog.Logger
	StatusDir string
	Interval  time.Duration
}

// Report is a point-in-time view of the engine written to the status file.
type Report struct {
	Time             time.Time   `json:"time"`
	SimRunning       bool        `json:"simRunning"`
	Fleet            fleet.Stats `json:"fleet"`
	SnapshotQueueLen int         `json:"snapshotQueueLen"`
	AlertQueueLen    int         `json:"alertQueueLen"`
	LastTickMs       float64     `json:"lastTickMs"`
}

// Service periodically reports engine health to the status file and logger.
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	if deps.Interval <= 0 {
		deps.Interval = time.Second
	}
	return &Service{
		deps:     deps,
		stopChan: make(chan struct{}),
	}
}

// IsRunning returns whether the status monitor is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Snapshot builds the current report from the store and runner.
func (s *Service) Snapshot() Report {
	snapLen, alertLen := s.deps.Runner.QueueLengths()
	return Report{
		Time:             time.Now(),
		SimRunning:       s.deps.Runner.IsRunning(),
		Fleet:            fleet.ComputeStats(s.deps.Store.Snapshot()),
		SnapshotQueueLen: snapLen,
		AlertQueueLen:    alertLen,
		LastTickMs:       float64(s.deps.Runner.LastTickDuration().Microseconds()) / 1000.0,
	}
}

// Start starts the status monitor goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		logger := s.deps.Logger
		logger.Debug().Msg("starting status monitor")

		var statusFile *os.File
		if s.deps.StatusDir != "" {
			var err error
			statusFile, err = os.Create(filepath.Join(s.deps.StatusDir, "status.txt"))
			if err != nil {
				logger.Error().Err(err).Msg("error creating status file")
			} else {
				defer statusFile.Close()
			}
		}

		ticker := time.NewTicker(s.deps.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				report := s.Snapshot()

				if statusFile != nil {
					line, err := json.MarshalIndent(report, "", "  ")
					if err != nil {
						line = []byte(fmt.Sprintf(`{"error": "%s"}`, err))
					}
					statusFile.Truncate(0)
					statusFile.Seek(0, 0)
					statusFile.Write(append(line, '\n'))
				}

				logger.Debug().
					Bool("simRunning", report.SimRunning).
					Int("total", report.Fleet.Total).
					Int("withAlerts", report.Fleet.WithAlerts).
					Int("snapshotQueue", report.SnapshotQueueLen).
					Int("alertQueue", report.AlertQueueLen).
					Msg("engine status")
			}
		}
	}()

	return nil
}

// Stop stops the status monitor
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		close(s.stopChan)
	}
}
