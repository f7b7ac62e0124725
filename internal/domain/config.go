package domain

// ConfigFileName is the configuration file name inside the config directory.
const ConfigFileName = "config.toml"

// Store backend names.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no file exists.
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	User      string           // Identity of the local user (overridden by POMO_USER)
	Store     string           // Store backend: "json" or "sqlite"
	DataDir   string           // Data directory (empty = XDG default)
	Durations DurationsConfig  // [durations] settings
	Log       LogConfig        // [log] settings
}

// DurationsConfig holds default cycle durations from the [durations] section.
type DurationsConfig struct {
	Focus int // Default focus duration in seconds
	Break int // Default break duration in seconds
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreJSON,
		Durations: DurationsConfig{
			Focus: 25 * 60,
			Break: 5 * 60,
		},
		Log: LogConfig{Level: "warn"},
	}
}
