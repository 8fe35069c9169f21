package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const minSecretLength = 32

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// AssistantServiceConfig is the complete runtime configuration of the service.
type AssistantServiceConfig struct {
	Env      string `env:"APP_ENV"   envDefault:"development"`
	Server   ServerConfig
	Token    TokenConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Password PasswordConfig
}

type ServerConfig struct {
	Addr            string        `env:"HTTP_ADDR"             envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"90s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type TokenConfig struct {
	Secret       string        `env:"JWT_SECRET"`
	Issuer       string        `env:"JWT_ISSUER"     envDefault:"academia-bot"`
	ExpiresIn    time.Duration `env:"JWT_EXPIRES_IN" envDefault:"1h"`
	CookieName   string        `env:"COOKIE_NAME"    envDefault:"token"`
	CookieSecure bool          `env:"COOKIE_SECURE"  envDefault:"false"`
}

type DatabaseConfig struct {
	Driver         string        `env:"STORE_DRIVER"          envDefault:"mongo"`
	URI            string        `env:"MONGO_URI"`
	Name           string        `env:"MONGO_DATABASE"        envDefault:"academia"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL"   envDefault:"gemini-1.5-pro"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
}

type PasswordConfig struct {
	TimeCost    uint32 `env:"ARGON2_TIME_COST"`
	MemoryCost  uint32 `env:"ARGON2_MEMORY_COST"`
	Parallelism uint8  `env:"ARGON2_PARALLELISM"`
}

// Load parses the environment and validates the result.
func Load() (*AssistantServiceConfig, error) {
	cfg, err := env.ParseAs[AssistantServiceConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *AssistantServiceConfig) validate() error {
	var errs []error

	if c.Token.Secret == "" {
		errs = append(errs, errors.New("missing JWT_SECRET environment variable"))
	} else if len(c.Token.Secret) < minSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength))
	}
	if c.Token.ExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.Gemini.APIKey == "" {
		errs = append(errs, errors.New("missing GEMINI_API_KEY environment variable"))
	}

	switch c.Database.Driver {
	case StoreDriverMongo:
		if c.Database.URI == "" {
			errs = append(errs, errors.New("missing MONGO_URI environment variable"))
		}
	case StoreDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver))
	}

	return errors.Join(errs...)
}
