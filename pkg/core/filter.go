// pkg/core/filter.go
package core

// FilterCriteria narrows a vehicle collection. Every field is optional; a
// zero value (empty string, nil slice, nil pointer) matches everything.
// Present predicates combine with AND.
type FilterCriteria struct {
	Origin      string      `json:"origin,omitempty"`
	Destination string      `json:"destination,omitempty"`
	Route       string      `json:"route,omitempty"`
	Statuses    []Status    `json:"statuses,omitempty"`
	Companies   []string    `json:"companies,omitempty"`
	TruckTypes  []string    `json:"truckTypes,omitempty"`
	HasAlerts   *bool       `json:"hasAlerts,omitempty"`
	AlertTypes  []AlertType `json:"alertTypes,omitempty"`
}

// IsZero reports whether no predicate is set.
func (c FilterCriteria) IsZero() bool {
	return c.Origin == "" && c.Destination == "" && c.Route == "" &&
		len(c.Statuses) == 0 && len(c.Companies) == 0 && len(c.TruckTypes) == 0 &&
		c.HasAlerts == nil && len(c.AlertTypes) == 0
}
