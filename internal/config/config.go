package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Metrics  Metrics
	Logger   Logger
	Platform Platform
	Auth     Auth
	Users    Users
	Groups   Groups
}

type Service struct {
	Port string `env:"MESSAGING_SERVICE_PORT" env-default:"8080"`
	Name string `env:"MESSAGING_SERVICE_NAME" env-default:"messaging-service"`
}

type Postgres struct {
	User     string `env:"MESSAGING_SERVICE_POSTGRES_USER"`
	Password string `env:"MESSAGING_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"MESSAGING_SERVICE_POSTGRES_DB"`
	Host     string `env:"MESSAGING_SERVICE_POSTGRES_HOST"`
	Port     string `env:"MESSAGING_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"USER_UPDATED_TOPIC"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Auth struct {
	JWTSecret string `env:"MESSAGING_SERVICE_JWT_SECRET"`
}

type Users struct {
	BaseURL string        `env:"USER_SERVICE_URL"`
	APIKey  string        `env:"USER_SERVICE_API_KEY"`
	Timeout time.Duration `env:"USER_SERVICE_TIMEOUT" env-default:"5s"`
}

type Groups struct {
	BaseURL string        `env:"GROUP_SERVICE_URL"`
	APIKey  string        `env:"GROUP_SERVICE_API_KEY"`
	Timeout time.Duration `env:"GROUP_SERVICE_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(".env", cfg); err != nil {
		if err = cleanenv.ReadEnv(cfg); err != nil {
			log.Fatalf("failed to read config: %v", err)
		}
	}

	return cfg
}
