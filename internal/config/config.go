package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	// Load .env before viper reads the environment
	_ "github.com/joho/godotenv/autoload"
)

// AppConfig holds all application configuration.
type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Content   ContentConfig   `mapstructure:"content"`
	Animation AnimationConfig `mapstructure:"animation"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	Mode              string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string            `mapstructure:"level"`
	Format string            `mapstructure:"format"` // "console" or "json"
	Output []LogOutputConfig `mapstructure:"output"`
	Levels map[string]string `mapstructure:"levels"`
	Caller bool              `mapstructure:"caller"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type"` // "console" or "file"
	Enabled bool            `mapstructure:"enabled"`
	Path    string          `mapstructure:"path"`
	Rotate  LogRotateConfig `mapstructure:"rotate"`
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// ContentConfig points at an optional catalog override.
// Empty Path means the catalog embedded in the binary.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// AnimationConfig controls the decorative about-section animation fetch.
type AnimationConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 = transport default
}

// AnalyticsConfig controls privacy-conscious visitor tracking.
type AnalyticsConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Database  string        `mapstructure:"database"`
	Retention time.Duration `mapstructure:"retention"`
}

// AdminConfig holds admin credentials.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// DefaultAnimationURL is the Lottie descriptor shown in the about section.
const DefaultAnimationURL = "https://assets2.lottiefiles.com/packages/lf20_w51pcehl.json"

// NewConfig creates a new AppConfig by reading from a file, environment variables,
// and applying defaults.
func NewConfig(configPath string) (*AppConfig, error) {
	cfg := defaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.portfolio")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind env for %s", key)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Hosting platforms hand out the port as plain PORT
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PORTFOLIO_SERVER_PORT") == "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, errors.Errorf("invalid PORT: %q", port)
		}
		cfg.Server.Port = p
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

var envKeys = []string{
	"server.host",
	"server.port",
	"server.mode",
	"log.level",
	"log.format",
	"content.path",
	"animation.enabled",
	"animation.url",
	"animation.timeout",
	"analytics.enabled",
	"analytics.database",
	"analytics.retention",
	"admin.username",
	"admin.password",
}

// defaultConfig returns an AppConfig with default values.
func defaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			Mode:              gin.ReleaseMode,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{
					Type:    "console",
					Enabled: true,
				},
				{
					Type:    "file",
					Enabled: false,
					Path:    "./logs/portfolio.log",
					Rotate: LogRotateConfig{
						MaxSizeMB:  50,
						MaxBackups: 5,
						MaxAgeDays: 30,
						Compress:   true,
					},
				},
			},
			Levels: map[string]string{
				"server":    "INFO",
				"content":   "INFO",
				"asset":     "INFO",
				"analytics": "INFO",
				"admin":     "INFO",
			},
			Caller: false,
		},
		Animation: AnimationConfig{
			Enabled: true,
			URL:     DefaultAnimationURL,
		},
		Analytics: AnalyticsConfig{
			Enabled:   true,
			Database:  "portfolio.db",
			Retention: 365 * 24 * time.Hour,
		},
		Admin: AdminConfig{
			Username: "admin",
		},
	}
}

// validate checks if the configuration is valid.
func (c *AppConfig) validate() error {
	validLogLevels := map[string]bool{
		"TRACE": true, "DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "FATAL": true, "PANIC": true,
	}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return errors.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return errors.Errorf("log.format must be 'console' or 'json', got: %s", c.Log.Format)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return errors.Errorf("invalid server mode: %s", c.Server.Mode)
	}

	if c.Animation.Enabled && c.Animation.URL == "" {
		return errors.New("animation.url is required when animation is enabled")
	}

	if c.Analytics.Enabled {
		if c.Analytics.Database == "" {
			return errors.New("analytics.database is required when analytics is enabled")
		}
		if c.Analytics.Retention <= 0 {
			return errors.New("analytics.retention must be positive")
		}
	}

	return nil
}
