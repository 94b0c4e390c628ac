package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileName is the JSON config file looked up in the config directory.
const ConfigFileName = "truck_tracker.cfg.json"

// StorageConfig selects and parameterizes a storage backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Sqlite SqliteConfig `json:"sqlite" mapstructure:"sqlite"`
}

// SqliteConfig holds SQLite backend settings.
type SqliteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// Load reads configuration from the JSON file in configDir and sets default
// values. A missing file is an error; missing keys fall back to defaults.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// LoadDefaults initializes configuration without requiring a config file.
func LoadDefaults() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("dataDir", "")

	viper.SetDefault("sim.tickInterval", "3s")
	viper.SetDefault("sim.travelWindow", "150s")
	viper.SetDefault("sim.seed", 0)
	viper.SetDefault("sim.alertRetention", 50)
	viper.SetDefault("sim.speedAlertProbability", 0.05)
	viper.SetDefault("sim.fuelAlertProbability", 0.02)

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.sqlite.path", "./truck_tracker.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "truck_tracker")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "truck-tracker")
	viper.SetDefault("influx.backupPath", "./influx_backup.lp.gz")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("api.listen", ":8080")
}

// Storage returns the storage backend configuration.
func Storage() StorageConfig {
	var cfg StorageConfig
	cfg.Type = viper.GetString("storage.type")
	cfg.Sqlite.Path = viper.GetString("storage.sqlite.path")
	return cfg
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetFloat64 returns a float64 config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
