// Package fixtures loads the static vehicle fleet the dashboard starts
// from. A default fleet ships embedded in the binary; a vehicles.json in the
// configured data directory overrides it.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahmed-reda-301/truck-tracker/pkg/core"
)

//go:embed vehicles.json
var defaultVehicles []byte

// FixtureFileName is the override file looked up in the data directory.
const FixtureFileName = "vehicles.json"

// LoadVehicles reads the vehicle fixture. When dataDir is empty or contains
// no vehicles.json the embedded default fleet is used. A malformed file is
// an error the caller surfaces to the user; there is no retry.
func LoadVehicles(dataDir string) ([]core.Vehicle, error) {
	raw := defaultVehicles
	source := "embedded"

	if dataDir != "" {
		path := filepath.Join(dataDir, FixtureFileName)
		if data, err := os.ReadFile(path); err == nil {
			raw = data
			source = path
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading vehicle fixture %s: %w", path, err)
		}
	}

	var vehicles []core.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, fmt.Errorf("parsing vehicle fixture (%s): %w", source, err)
	}

	for i := range vehicles {
		if err := validate(&vehicles[i]); err != nil {
			return nil, fmt.Errorf("vehicle fixture (%s) entry %d: %w", source, i, err)
		}
	}
	return vehicles, nil
}

func validate(v *core.Vehicle) error {
	if v.ID == "" {
		return fmt.Errorf("missing id")
	}
	if !v.Status.Valid() {
		return fmt.Errorf("vehicle %s: unknown status %q", v.ID, v.Status)
	}
	if v.Destination.Name == "" {
		return fmt.Errorf("vehicle %s: missing destination", v.ID)
	}
	return nil
}
