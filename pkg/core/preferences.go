// pkg/core/preferences.go
package core

// Preferences is the small dashboard-preferences object persisted between
// sessions. It holds only primitive flags plus the last applied filter, so
// no schema versioning is needed.
type Preferences struct {
	Theme        string         `json:"theme"`
	PanelVisible bool           `json:"panelVisible"`
	LastFilter   FilterCriteria `json:"lastFilter"`
}

// DefaultPreferences returns the preferences used before a user has saved any.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:        "light",
		PanelVisible: true,
	}
}
