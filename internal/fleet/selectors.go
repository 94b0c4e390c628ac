// internal/fleet/selectors.go
package fleet

import (
	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

// Stats are aggregate counters over a vehicle snapshot.
type Stats struct {
	Total      int                 `json:"total"`
	ByStatus   map[core.Status]int `json:"byStatus"`
	WithAlerts int                 `json:"withAlerts"`
	MeanSpeed  float64             `json:"meanSpeed"`
}

// AlertBreakdown counts alerts of one category by severity.
type AlertBreakdown struct {
	Count    int `json:"count"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// AlertStats maps every alert category to its breakdown. All 7 categories
// are always present, zeroed when unused.
type AlertStats map[core.AlertType]AlertBreakdown

// Filter returns the vehicles matching every present predicate in criteria,
// preserving input order. The input slice is never mutated; an empty
// collection or all-absent criteria behave as identity.
func Filter(vehicles []core.Vehicle, criteria core.FilterCriteria) []core.Vehicle {
	out := make([]core.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matches(&v, criteria) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v *core.Vehicle, c core.FilterCriteria) bool {
	if c.Origin != "" && v.Origin.Name != c.Origin {
		return false
	}
	if c.Destination != "" && v.Destination.Name != c.Destination {
		return false
	}
	if c.Route != "" && v.Route != c.Route {
		return false
	}
	if len(c.Statuses) > 0 && !containsStatus(c.Statuses, v.Status) {
		return false
	}
	if len(c.Companies) > 0 && !containsString(c.Companies, v.Company) {
		return false
	}
	if len(c.TruckTypes) > 0 && !containsString(c.TruckTypes, v.TruckType) {
		return false
	}
	if c.HasAlerts != nil && v.HasAlerts() != *c.HasAlerts {
		return false
	}
	if len(c.AlertTypes) > 0 && !hasAlertOfType(v, c.AlertTypes) {
		return false
	}
	return true
}

// ComputeStats aggregates a snapshot. The mean speed over an empty
// collection is defined as 0, never NaN.
func ComputeStats(vehicles []core.Vehicle) Stats {
	stats := Stats{
		ByStatus: make(map[core.Status]int, len(core.Statuses)),
	}
	for _, s := range core.Statuses {
		stats.ByStatus[s] = 0
	}

	var speedSum float64
	for _, v := range vehicles {
		stats.Total++
		stats.ByStatus[v.Status]++
		if v.HasAlerts() {
			stats.WithAlerts++
		}
		speedSum += v.Speed
	}
	if stats.Total > 0 {
		stats.MeanSpeed = speedSum / float64(stats.Total)
	}
	return stats
}

// ComputeAlertStats flattens every vehicle's alert list into per-category
// severity breakdowns.
func ComputeAlertStats(vehicles []core.Vehicle) AlertStats {
	stats := make(AlertStats, len(core.AlertTypes))
	for _, t := range core.AlertTypes {
		stats[t] = AlertBreakdown{}
	}

	for _, v := range vehicles {
		for _, a := range v.Alerts {
			b := stats[a.Type]
			b.Count++
			switch a.Severity {
			case core.SeverityCritical:
				b.Critical++
			case core.SeverityWarning:
				b.Warning++
			case core.SeverityInfo:
				b.Info++
			}
			stats[a.Type] = b
		}
	}
	return stats
}

func containsStatus(set []core.Status, s core.Status) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

func hasAlertOfType(v *core.Vehicle, types []core.AlertType) bool {
	for _, a := range v.Alerts {
		for _, t := range types {
			if a.Type == t {
				return true
			}
		}
	}
	return false
}
