package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"sim": { "tickInterval": "5s", "seed": 1234 },
		"storage": { "type": "sqlite", "sqlite": { "path": "/tmp/fleet.db" } }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, 5*time.Second, GetDuration("sim.tickInterval"))
	assert.Equal(t, int64(1234), GetInt64("sim.seed"))

	storage := Storage()
	assert.Equal(t, "sqlite", storage.Type)
	assert.Equal(t, "/tmp/fleet.db", storage.Sqlite.Path)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./logs", viper.GetString("logsDir"))
	assert.Equal(t, 3*time.Second, GetDuration("sim.tickInterval"))
	assert.Equal(t, 150*time.Second, GetDuration("sim.travelWindow"))
	assert.Equal(t, 50, GetInt("sim.alertRetention"))
	assert.Equal(t, 0.05, GetFloat64("sim.speedAlertProbability"))
	assert.Equal(t, 0.02, GetFloat64("sim.fuelAlertProbability"))
	assert.Equal(t, "memory", viper.GetString("storage.type"))
	assert.Equal(t, "localhost", viper.GetString("db.host"))
	assert.Equal(t, "5432", viper.GetString("db.port"))
	assert.Equal(t, "truck_tracker", viper.GetString("db.database"))
	assert.Equal(t, false, GetBool("influx.enabled"))
	assert.Equal(t, "truck-tracker", viper.GetString("influx.org"))
	assert.Equal(t, false, GetBool("graylog.enabled"))
	assert.Equal(t, ":8080", viper.GetString("api.listen"))
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadDefaults_NoFileNeeded(t *testing.T) {
	t.Cleanup(viper.Reset)

	LoadDefaults()
	assert.Equal(t, "memory", Storage().Type)
}
