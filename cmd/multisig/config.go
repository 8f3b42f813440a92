package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "MULTISIG"

const (
	storageRedis    = "redis"
	storagePostgres = "postgres"
)

type redisConfig struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type postgresConfig struct {
	DSN     string `envconfig:"DSN" default:"postgres://localhost:5432/multisig?sslmode=disable"`
	Migrate bool   `envconfig:"MIGRATE" default:"true"`
}

type ethereumConfig struct {
	Endpoint     string        `envconfig:"ENDPOINT" required:"true"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"2"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"500ms"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s"`

	// Receipt polling after eth_sendTransaction.
	ReceiptAttempts uint          `envconfig:"RECEIPT_ATTEMPTS" default:"30"`
	ReceiptDelay    time.Duration `envconfig:"RECEIPT_DELAY" default:"1s"`
	ReceiptMaxDelay time.Duration `envconfig:"RECEIPT_MAX_DELAY" default:"5s"`
}

// config is read from MULTISIG_* environment variables, for example
// MULTISIG_STORAGE_DRIVER or MULTISIG_ETHEREUM_ENDPOINT.
type config struct {
	ServiceName      string `envconfig:"SERVICE_NAME" default:"multisig"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	StorageDriver    string `envconfig:"STORAGE_DRIVER" default:"redis"`
	CASRetryAttempts uint   `envconfig:"CAS_RETRY_ATTEMPTS" default:"10"`

	Redis    redisConfig    `envconfig:"REDIS"`
	Postgres postgresConfig `envconfig:"POSTGRES"`
	Ethereum ethereumConfig `envconfig:"ETHEREUM"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	switch cfg.StorageDriver {
	case storageRedis, storagePostgres:
	default:
		return config{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CASRetryAttempts == 0 {
		return config{}, fmt.Errorf("%s_CAS_RETRY_ATTEMPTS must be positive", envPrefix)
	}

	return cfg, nil
}
