package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR"        default:":8080"`
	MongoURL        string        `envconfig:"MONGO_URL"        default:"mongodb://localhost:27017"`
	DBName          string        `envconfig:"DB_NAME"          default:"pawmart"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"       default:"localhost:6379"`
	JWTSecret       string        `envconfig:"JWT_SECRET"       default:"pawmart_dev_secret"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT"  default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	IdempotencyTTL  time.Duration `envconfig:"IDEMPOTENCY_TTL"  default:"24h"`
	SeedOnBoot      bool          `envconfig:"SEED_ON_BOOT"     default:"true"`
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
