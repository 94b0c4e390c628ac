// pkg/core/alert.go
package core

import "time"

// AlertType categorizes an alert.
type AlertType string

const (
	AlertSpeed       AlertType = "speed"
	AlertLock        AlertType = "lock"
	AlertDirection   AlertType = "direction"
	AlertStop        AlertType = "stop"
	AlertBattery     AlertType = "battery"
	AlertFuel        AlertType = "fuel"
	AlertTemperature AlertType = "temperature"
)

// AlertTypes lists every alert category, in stable order.
var AlertTypes = []AlertType{
	AlertSpeed,
	AlertLock,
	AlertDirection,
	AlertStop,
	AlertBattery,
	AlertFuel,
	AlertTemperature,
}

// Severity ranks an alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a timestamped, categorized notification attached to a vehicle.
type Alert struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicleId"`
	Type      AlertType `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
