package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,        default=8080"`
	Env       string        `env:"ENV,         default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,   default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,   default=info"`

	// FrontendDir is served for non-API paths that match no route.
	FrontendDir string `env:"FRONTEND_DIR, default=./web/dist"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Proxy    ProxyConfig
	Throttle ThrottleConfig
	Seed     SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gateway"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type ProxyConfig struct {
	// ServiceTargets maps /api/v1/<name> to its backend base URL.
	ServiceTargets map[string]string `env:"SERVICE_TARGETS, default=orders:http://localhost:8081,settings:http://localhost:8082,admin:http://localhost:8083"`
	// InferenceTarget backs the unauthenticated /v2 and /api/{generate,chat,embeddings} passthrough.
	InferenceTarget string        `env:"INFERENCE_URL, default=http://localhost:11434"`
	Timeout         time.Duration `env:"PROXY_TIMEOUT, default=30s"`
}

type ThrottleConfig struct {
	LoginLimit  int           `env:"LOGIN_RATE_LIMIT,  default=20"`
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

type SeedConfig struct {
	Enabled       bool   `env:"SEED_USERS,          default=false"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@example.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
