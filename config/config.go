package config

import (
	"flag"
	"os"
	"sync"
	"time"
)

const (
	defaultServerAddress = ":8080"
	defaultDatabaseDSN   = ""
	defaultGatewayAddr   = "http://localhost:8181"
	defaultLogLevel      = "debug"
	defaultStaleAfter    = 24 * time.Hour
)

type Config struct {
	ServerAddr  string
	DatabaseDSN string
	GatewayAddr string
	LogLevel    string
	StaleAfter  time.Duration
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "order mart server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "order mart database DSN, empty runs in-memory")
		flag.StringVar(&cfg.GatewayAddr, "g", defaultGatewayAddr, "payment gateway address")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.DurationVar(&cfg.StaleAfter, "s", defaultStaleAfter, "age after which unpaid orders are cancelled")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if gatewayAddrEnv := os.Getenv("PAYMENT_GATEWAY_ADDRESS"); gatewayAddrEnv != "" {
			cfg.GatewayAddr = gatewayAddrEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if staleAfterEnv := os.Getenv("STALE_AFTER"); staleAfterEnv != "" {
			if d, err := time.ParseDuration(staleAfterEnv); err == nil {
				cfg.StaleAfter = d
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
