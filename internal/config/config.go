// Package config loads the claimwatch settings from the environment.
//
// Every variable is prefixed with CLAIMWATCH_. A .env file, when present, is
// read first; variables already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/claimwatch/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "CLAIMWATCH"

// Network names a receipt source can be registered under.
const (
	NetworkLayer1 = "layer1"
	NetworkLayer2 = "layer2"
)

type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"claimwatch" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	APIRoot    string        `envconfig:"API_ROOT" validate:"required,url"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s" validate:"gt=0"`

	Layer1RPCURL   string `envconfig:"LAYER1_RPC_URL" validate:"required,url"`
	Layer2RPCURL   string `envconfig:"LAYER2_RPC_URL" validate:"omitempty,url"`
	DefaultNetwork string `envconfig:"DEFAULT_NETWORK" default:"layer1" validate:"oneof=layer1 layer2"`

	PollInterval      time.Duration `envconfig:"POLL_INTERVAL" default:"2s" validate:"gt=0"`
	SettleDelay       time.Duration `envconfig:"SETTLE_DELAY" default:"1s" validate:"gte=0"`
	ClaimPollInterval time.Duration `envconfig:"CLAIM_POLL_INTERVAL" default:"5s" validate:"gt=0"`
	MaxBackoff        time.Duration `envconfig:"MAX_BACKOFF" default:"0s" validate:"gte=0"`
	WatchTimeout      time.Duration `envconfig:"WATCH_TIMEOUT" default:"0s" validate:"gte=0"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h" validate:"gt=0"`

	AMQPURL      string `envconfig:"AMQP_URL" validate:"omitempty,url"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"claimwatch.events" validate:"required_with=AMQPURL"`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
}

// Networks returns the RPC endpoint of every configured network.
func (c Config) Networks() map[string]string {
	networks := map[string]string{NetworkLayer1: c.Layer1RPCURL}
	if c.Layer2RPCURL != "" {
		networks[NetworkLayer2] = c.Layer2RPCURL
	}
	return networks
}

// Load reads the given dotenv files (".env" when none is given), then the
// environment, and validates the result. Missing dotenv files are ignored.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}

	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	if _, ok := cfg.Networks()[cfg.DefaultNetwork]; !ok {
		return Config{}, fmt.Errorf("%w: default network %s has no rpc url", validator.ErrValidation, cfg.DefaultNetwork)
	}

	return cfg, nil
}
