package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tracekit/internal/metrics"
)

// Conf holds the application configuration, making it accessible globally.
var Conf *Config

// Config struct is the top-level configuration structure.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Letters    LettersConfig    `mapstructure:"letters"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Retention  RetentionConfig  `mapstructure:"retention"`
	Analytics  metrics.Config   `mapstructure:"analytics"`
}

// ServerConfig holds server-related settings.
type ServerConfig struct {
	Port          string `mapstructure:"port"`
	SessionSecret string `mapstructure:"session_secret"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// LettersConfig points at the static letter definition file.
type LettersConfig struct {
	Path string `mapstructure:"path"`
}

// ClassifierConfig wires the optional external recognition service. An
// empty URL leaves the placeholder classifier in place.
type ClassifierConfig struct {
	URL       string `mapstructure:"url"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// RetentionConfig controls pruning of old session data.
type RetentionConfig struct {
	Days         int `mapstructure:"days"`
	SweepMinutes int `mapstructure:"sweep_minutes"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "5080")
	v.SetDefault("server.session_secret", "change-me-in-production")

	// Database defaults
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.dbname", "tracekit-db")

	// Logging defaults
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs

	v.SetDefault("letters.path", "config/letters.yaml")

	v.SetDefault("classifier.url", "")
	v.SetDefault("classifier.timeout_ms", 2000)

	v.SetDefault("retention.days", 365)
	v.SetDefault("retention.sweep_minutes", 60)

	// Analytics pipeline constants. Product-tunable; the defaults mirror
	// metrics.DefaultConfig so file overrides stay partial.
	a := metrics.DefaultConfig()
	v.SetDefault("analytics.hesitation_threshold_ms", a.HesitationThresholdMs)
	v.SetDefault("analytics.ballistic_ratio", a.BallisticRatio)
	v.SetDefault("analytics.reversal_stride", a.ReversalStride)
	v.SetDefault("analytics.reversal_min_vector_px", a.ReversalMinVectorPx)
	v.SetDefault("analytics.reversal_angle_deg", a.ReversalAngleDeg)
	v.SetDefault("analytics.tremor_stride", a.TremorStride)
	v.SetDefault("analytics.tremor_min_points", a.TremorMinPoints)
	v.SetDefault("analytics.tremor_band_low_hz", a.TremorBandLowHz)
	v.SetDefault("analytics.tremor_band_high_hz", a.TremorBandHighHz)
	v.SetDefault("analytics.tremor_power_scale", a.TremorPowerScale)
	v.SetDefault("analytics.tremor_mild_power", a.TremorMildPower)
	v.SetDefault("analytics.tremor_moderate_power", a.TremorModeratePower)
	v.SetDefault("analytics.tremor_severe_power", a.TremorSeverePower)
	v.SetDefault("analytics.smoothing_window", a.SmoothingWindow)
	v.SetDefault("analytics.corner_angle_deg", a.CornerAngleDeg)
	v.SetDefault("analytics.closure_threshold_px", a.ClosureThresholdPx)
	v.SetDefault("analytics.closure_min_points", a.ClosureMinPoints)
	v.SetDefault("analytics.pen_lift_gap_ms", a.PenLiftGapMs)
	v.SetDefault("analytics.samples_per_segment", a.SamplesPerSegment)
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("TRACEKIT") // e.g., TRACEKIT_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into our global Conf variable
	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set up a watch for configuration changes for hot-reloading
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
