package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=5000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// AdminEmails is a comma-separated allowlist of addresses that receive
	// the admin role at signup. Empty means nobody becomes admin.
	AdminEmails string `env:"ADMIN_EMAILS"`

	// DisplayTZ is the IANA zone client-record timestamps are rendered in.
	DisplayTZ string `env:"DISPLAY_TZ, default=Asia/Dhaka"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=client_information"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// AdminAllowlist splits AdminEmails into individual addresses.
func (c *Config) AdminAllowlist() []string {
	if strings.TrimSpace(c.AdminEmails) == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
