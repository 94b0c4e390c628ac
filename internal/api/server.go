// internal/api/server.go
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ahmed-reda-301/truck-tracker/internal/fleet"
	"github.com/ahmed-reda-301/truck-tracker/internal/storage"
	"github.com/ahmed-reda-301/truck-tracker/internal/worker"
)

// Dependencies holds everything the HTTP surface reads from or drives.
type Dependencies struct {
	Store   *fleet.Store
	Backend storage.Backend
	Runner  *worker.Runner
	Logger  zerolog.Logger
}

// Server is the read-mostly dashboard API.
type Server struct {
	App  *fiber.App
	deps Dependencies
}

// NewServer builds the fiber app and registers all routes.
func NewServer(deps Dependencies) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(NewLogger(deps.Logger))

	s := &Server{App: app, deps: deps}

	app.Get("/healthz", s.getHealth)

	group := app.Group("/api")

	group.Get("/vehicles", s.getVehicles)
	group.Get("/vehicles/:id", s.getVehicle)
	group.Get("/vehicles/:id/trail", s.getTrail)

	group.Get("/stats", s.getStats)
	group.Get("/alerts/stats", s.getAlertStats)

	group.Get("/preferences", s.getPreferences)
	group.Put("/preferences", s.putPreferences)

	group.Post("/simulation/start", s.startSimulation)
	group.Post("/simulation/stop", s.stopSimulation)

	return s
}

// Listen blocks serving on the given address.
func (s *Server) Listen(addr string) error {
	return s.App.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
