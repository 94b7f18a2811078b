package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DB       *DBconfig       `yaml:"db"`
	RabbitMq *RabbitMqconfig `yaml:"rabbitmq"`
	Srv      *Serviceconfig  `yaml:"services"`
	App      *Appconfig      `yaml:"app"`
	Log      *Loggerconfig   `yaml:"log"`
}

type DBconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMqconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type Serviceconfig struct {
	AdminServicePort string `yaml:"admin_service"`
}

type Appconfig struct {
	JwtSecret string `yaml:"jwt_secret"`
	// SearchDebounceMs gates re-querying on free-text search input.
	SearchDebounceMs int `yaml:"search_debounce_ms"`
	// HistogramSample caps the ride-status histogram to the N most recent rows.
	HistogramSample int `yaml:"histogram_sample"`
	RideListLimit   int `yaml:"ride_list_limit"`
	UserListLimit   int `yaml:"user_list_limit"`
}

type Loggerconfig struct {
	Level string `yaml:"level"`
}

// New builds the configuration from defaults, an optional YAML file named by
// CONFIG_PATH, and environment variable overrides, in that order.
func New() (*Config, error) {
	cnf := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cnf); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cnf)
	return cnf, nil
}

func defaults() *Config {
	return &Config{
		DB: &DBconfig{
			Host:     "localhost",
			Port:     5432,
			User:     "ridehail_user",
			Password: "ridehail_pass",
			Database: "ridehail_db",
		},
		RabbitMq: &RabbitMqconfig{
			Host:     "localhost",
			Port:     5672,
			User:     "guest",
			Password: "guest",
			VHost:    "",
		},
		Srv: &Serviceconfig{
			AdminServicePort: "3004",
		},
		App: &Appconfig{
			JwtSecret:        "dev-secret",
			SearchDebounceMs: 500,
			HistogramSample:  1000,
			RideListLimit:    50,
			UserListLimit:    100,
		},
		Log: &Loggerconfig{
			Level: "INFO",
		},
	}
}

func applyEnv(cnf *Config) {
	getEnv := func(key string, dst *string) {
		if val := os.Getenv(key); val != "" {
			*dst = val
		}
	}
	getEnvInt := func(key string, dst *int) {
		valStr := os.Getenv(key)
		if valStr == "" {
			return
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("ignoring non-numeric %v=%v\n", key, valStr)
			return
		}
		*dst = val
	}

	getEnv("DB_HOST", &cnf.DB.Host)
	getEnvInt("DB_PORT", &cnf.DB.Port)
	getEnv("DB_USER", &cnf.DB.User)
	getEnv("DB_PASSWORD", &cnf.DB.Password)
	getEnv("DB_NAME", &cnf.DB.Database)

	getEnv("RABBITMQ_HOST", &cnf.RabbitMq.Host)
	getEnvInt("RABBITMQ_PORT", &cnf.RabbitMq.Port)
	getEnv("RABBITMQ_USER", &cnf.RabbitMq.User)
	getEnv("RABBITMQ_PASSWORD", &cnf.RabbitMq.Password)
	getEnv("RABBITMQ_VHOST", &cnf.RabbitMq.VHost)

	getEnv("ADMIN_SERVICE_PORT", &cnf.Srv.AdminServicePort)

	getEnv("JWT_SECRET", &cnf.App.JwtSecret)
	getEnvInt("SEARCH_DEBOUNCE_MS", &cnf.App.SearchDebounceMs)
	getEnvInt("HISTOGRAM_SAMPLE", &cnf.App.HistogramSample)
	getEnvInt("RIDE_LIST_LIMIT", &cnf.App.RideListLimit)
	getEnvInt("USER_LIST_LIMIT", &cnf.App.UserListLimit)

	getEnv("LOG_LEVEL", &cnf.Log.Level)
}
