package httpform

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/formkit/limits"
)

// Config carries the default decoding bounds for HTTP handlers. Values are
// read from the environment; every bound can still be overridden per call.
type Config struct {
	// MaxBodyBytes caps the declared request body size. Default 10 MiB.
	MaxBodyBytes int64 `env:"FORMKIT_MAX_BODY_BYTES" envDefault:"10485760"`

	// MaxMemoryBytes caps in-memory form accumulation. Default 1 MiB.
	MaxMemoryBytes int64 `env:"FORMKIT_MAX_MEMORY_BYTES" envDefault:"1048576"`

	// MaxParts caps the multipart part count. Default 1000.
	MaxParts int64 `env:"FORMKIT_MAX_PARTS" envDefault:"1000"`
}

// Limits converts the config into per-call limits.
func (c Config) Limits() limits.Limits {
	return limits.Limits{
		MaxTotalBodyBytes: c.MaxBodyBytes,
		MaxInMemoryBytes:  c.MaxMemoryBytes,
		MaxParts:          c.MaxParts,
	}
}

// ErrParsingConfig wraps environment parsing failures.
var ErrParsingConfig = errors.New("httpform: failed to parse config from environment")

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded once per process if present; its absence is not an
// error.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
