// internal/api/routes.go
package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed-reda-301/truck-tracker/internal/fleet"
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

func (s *Server) getHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"simRunning": s.deps.Runner.IsRunning(),
		"vehicles":   s.deps.Store.Count(),
	})
}

// criteriaFromQuery builds FilterCriteria from the request query string.
// List parameters take comma-separated values.
func criteriaFromQuery(c *fiber.Ctx) core.FilterCriteria {
	criteria := core.FilterCriteria{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Route:       c.Query("route"),
		Companies:   splitList(c.Query("company")),
		TruckTypes:  splitList(c.Query("truckType")),
	}
	for _, s := range splitList(c.Query("status")) {
		criteria.Statuses = append(criteria.Statuses, core.Status(s))
	}
	for _, a := range splitList(c.Query("alertType")) {
		criteria.AlertTypes = append(criteria.AlertTypes, core.AlertType(a))
	}
	if v := c.Query("hasAlerts"); v != "" {
		hasAlerts := c.QueryBool("hasAlerts")
		criteria.HasAlerts = &hasAlerts
	}
	return criteria
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Server) getVehicles(c *fiber.Ctx) error {
	vehicles := fleet.Filter(s.deps.Store.Snapshot(), criteriaFromQuery(c))
	return c.JSON(fiber.Map{
		"count":    len(vehicles),
		"vehicles": vehicles,
	})
}

func (s *Server) getVehicle(c *fiber.Ctx) error {
	id := c.Params("id")
	vehicle, ok := s.deps.Store.Vehicle(id)
	if !ok {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "unknown vehicle: " + id,
		})
	}
	return c.JSON(vehicle)
}

func (s *Server) getTrail(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.deps.Store.Vehicle(id); !ok {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "unknown vehicle: " + id,
		})
	}

	limit := c.QueryInt("limit", 100)
	trail, err := s.deps.Backend.Trail(id, limit)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"vehicleId": id,
		"trail":     trail,
	})
}

func (s *Server) getStats(c *fiber.Ctx) error {
	vehicles := fleet.Filter(s.deps.Store.Snapshot(), criteriaFromQuery(c))
	return c.JSON(fleet.ComputeStats(vehicles))
}

func (s *Server) getAlertStats(c *fiber.Ctx) error {
	vehicles := fleet.Filter(s.deps.Store.Snapshot(), criteriaFromQuery(c))
	return c.JSON(fleet.ComputeAlertStats(vehicles))
}

func (s *Server) getPreferences(c *fiber.Ctx) error {
	prefs, err := s.deps.Backend.LoadPreferences()
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(prefs)
}

func (s *Server) putPreferences(c *fiber.Ctx) error {
	var prefs core.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "invalid preferences payload: " + err.Error(),
		})
	}
	if err := s.deps.Backend.SavePreferences(prefs); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(prefs)
}

func (s *Server) startSimulation(c *fiber.Ctx) error {
	if err := s.deps.Runner.Start(); err != nil {
		c.SendStatus(fiber.StatusConflict)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"simRunning": true,
	})
}

func (s *Server) stopSimulation(c *fiber.Ctx) error {
	s.deps.Runner.Stop()
	return c.JSON(fiber.Map{
		"simRunning": false,
	})
}
