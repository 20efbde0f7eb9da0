package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes every variable the service reads, e.g. LOGISOCIAL_MONGO_URI -> mongo.uri.
const EnvPrefix = "LOGISOCIAL_"

type Config struct {
	Environment string          `koanf:"environment" validate:"required,oneof=development staging production test"`
	Server      ServerConfig    `koanf:"server" validate:"required"`
	Mongo       MongoConfig     `koanf:"mongo" validate:"required"`
	RateLimit   RateLimitConfig `koanf:"ratelimit"`
	Log         LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     string        `koanf:"cors_origins"`
}

type MongoConfig struct {
	URI              string        `koanf:"uri" validate:"required"`
	Database         string        `koanf:"database" validate:"required"`
	ConnectTimeout   time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	OperationTimeout time.Duration `koanf:"operation_timeout" validate:"gt=0"`
	PingTTL          time.Duration `koanf:"ping_ttl" validate:"gte=0"`
}

// RateLimitConfig disables limiting when RPS is zero.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps" validate:"gte=0"`
	Burst int     `koanf:"burst" validate:"gte=0"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// AllowedOrigins splits the comma separated CORS origin list.
func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(s.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

var defaults = map[string]interface{}{
	"environment":             "development",
	"server.port":             "3001",
	"server.read_timeout":     15 * time.Second,
	"server.write_timeout":    15 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,
	"server.cors_origins":     "*",
	"mongo.uri":               "mongodb://localhost:27017",
	"mongo.database":          "db_logistica_social",
	"mongo.connect_timeout":   10 * time.Second,
	"mongo.operation_timeout": 5 * time.Second,
	"mongo.ping_ttl":          2 * time.Second,
	"ratelimit.rps":           20.0,
	"ratelimit.burst":         40,
	"log.level":               "",
}

func Load() (*Config, error) {
	godotenv.Load()

	k := koanf.New(".")
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("config: default %s: %w", key, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}

	return cfg, nil
}

// envKey maps LOGISOCIAL_SERVER_READ_TIMEOUT to server.read_timeout. Only the
// first underscore separates the section from the field name.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
