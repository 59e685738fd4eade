package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"3000"`

	// Environment controls error detail in responses ("development",
	// "test" or "production")
	Environment string `env:"APP_ENV" envDefault:"development"`

	// DatabasePath is the sqlite file backing the store
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database.sqlite"`

	// Import configuration for the bulk listing import pipeline
	Import struct {
		// Maximum number of listings to accumulate before writing a batch
		MaxBatchSize int `env:"IMPORT_MAX_BATCH_SIZE" envDefault:"100"`

		// Maximum time to wait before flushing a non-full batch (in seconds)
		MaxBatchWaitTime int `env:"IMPORT_BATCH_WAIT_TIME" envDefault:"5"`

		// Number of concurrent batch writers
		WorkerCount int `env:"IMPORT_WORKER_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"IMPORT_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"IMPORT_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
