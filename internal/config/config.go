package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

const (
	DeviceBackendMemory       = "memory"
	DeviceBackendMediaDevices = "mediadevices"
)

type Config struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"./static"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	APIKey    string `envconfig:"STREAM_API_KEY" required:"true"`
	UserID    string `envconfig:"STREAM_USER_ID" required:"true"`
	UserToken string `envconfig:"STREAM_USER_TOKEN" required:"true"`

	CallType   string `envconfig:"CALL_TYPE" default:"default"`
	CallNotify bool   `envconfig:"CALL_NOTIFY" default:"false"`

	DeviceBackend     string `envconfig:"DEVICE_BACKEND" default:"memory"`
	SimulationEnabled bool   `envconfig:"SIMULATION_ENABLED" default:"true"`

	WSAllowAnyOrigin bool `envconfig:"WS_ALLOW_ANY_ORIGIN" default:"false"`
}

// Load reads the optional .env files and then the environment. Variables
// already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DeviceBackend {
	case DeviceBackendMemory, DeviceBackendMediaDevices:
	default:
		return fmt.Errorf("config error: unknown DEVICE_BACKEND %q", c.DeviceBackend)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: LOG_LEVEL: %w", err)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) Credentials() domain.Credentials {
	return domain.Credentials{APIKey: c.APIKey, UserID: c.UserID, Token: c.UserToken}
}

func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
