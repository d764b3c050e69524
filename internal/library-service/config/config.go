package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Pool     PoolConfig
	Health   HealthConfig
	Mapper   MapperConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE" default:"./log/library-service.log"`
	AppName         string        `envconfig:"APP_NAME" default:"library-service"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	// Label is the product name reported by the health probe.
	Label string `envconfig:"DB_LABEL" default:"OpenGauss"`
}

// PoolConfig bounds the connection pool. Enabled=false skips pgxpool and
// lets database/sql manage connections, in which case pool-info reports nothing.
type PoolConfig struct {
	Enabled           bool          `envconfig:"DB_POOL_ENABLED" default:"true"`
	Name              string        `envconfig:"DB_POOL_NAME" default:"LibraryHikariPool"`
	MaxSize           int32         `envconfig:"DB_POOL_MAX_SIZE" default:"10"`
	MinIdle           int32         `envconfig:"DB_POOL_MIN_IDLE" default:"2"`
	ConnectionTimeout time.Duration `envconfig:"DB_POOL_CONNECTION_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `envconfig:"DB_POOL_IDLE_TIMEOUT" default:"10m"`
	MaxLifetime       time.Duration `envconfig:"DB_POOL_MAX_LIFETIME" default:"30m"`
}

type HealthConfig struct {
	ValidationTimeout time.Duration `envconfig:"HEALTH_VALIDATION_TIMEOUT" default:"1s"`
	ProbeSchedule     string        `envconfig:"HEALTH_PROBE_SCHEDULE" default:"@every 30s"`
}

type MapperConfig struct {
	XMLPath string `envconfig:"MAPPER_XML_PATH"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
