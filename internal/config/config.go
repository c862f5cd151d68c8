package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auction  AuctionConfig
	Fraud    FraudConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"bidding"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// RedisConfig backs the fraud monitor's sliding-window counters.
// An empty Addr falls back to in-process counters.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// AuctionConfig holds the bidding-engine tunables the product team did
// not want hard-coded: anti-snipe window, extension cap, and the
// admission coordinator's contention knobs.
type AuctionConfig struct {
	AntiSnipeWindow      time.Duration `env:"AUCTION_ANTI_SNIPE_WINDOW" envDefault:"60s"`
	DefaultMaxExtensions int           `env:"AUCTION_DEFAULT_MAX_EXTENSIONS" envDefault:"5"`
	LockTimeout          time.Duration `env:"AUCTION_LOCK_TIMEOUT" envDefault:"3s"`
	AdmissionRetries     int           `env:"AUCTION_ADMISSION_RETRIES" envDefault:"3"`
	CompensationRetries  int           `env:"AUCTION_COMPENSATION_RETRIES" envDefault:"3"`
}

type FraudConfig struct {
	Enabled             bool          `env:"FRAUD_ENABLED" envDefault:"true"`
	BidRateLimit        int64         `env:"FRAUD_BID_RATE_LIMIT" envDefault:"30"`
	BidRateWindow       time.Duration `env:"FRAUD_BID_RATE_WINDOW" envDefault:"5m"`
	DepositVolumeLimit  int64         `env:"FRAUD_DEPOSIT_VOLUME_LIMIT" envDefault:"100000"`
	DepositVolumeWindow time.Duration `env:"FRAUD_DEPOSIT_VOLUME_WINDOW" envDefault:"10m"`
	EventBuffer         int           `env:"FRAUD_EVENT_BUFFER" envDefault:"1024"`
}

type WorkerConfig struct {
	SweepInterval  time.Duration `env:"WORKER_SWEEP_INTERVAL" envDefault:"1s"`
	SweepBatchSize int           `env:"WORKER_SWEEP_BATCH_SIZE" envDefault:"50"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
