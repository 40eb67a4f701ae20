package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	HTTP        HTTPConfig
	Upstream    UpstreamConfig
	Session     SessionConfig
	Redis       RedisConfig
	Maps        MapsConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	SigningKey string
	CookieName string
	TTL        time.Duration
}

type RedisConfig struct {
	Addr     string
	URL      string
	Password string
	DB       int
}

type MapsConfig struct {
	APIKey    string
	CenterLat float64
	CenterLng float64
}

func NewConfig() (*Config, error) {
	// .env jest opcjonalny, w kontenerze konfiguracja przychodzi ze środowiska
	_ = godotenv.Load()

	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("PHARMA_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "pharmaradar"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("PHARMA_API_URL", "http://localhost:8000/api"),
			Timeout: upstreamTimeout,
		},
		Session: SessionConfig{
			SigningKey: getEnv("SESSION_SIGNING_KEY", "your_secret_key"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "pharmaradar_session"),
			TTL:        sessionTTL,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Maps: MapsConfig{
			APIKey:    getEnv("MAPS_API_KEY", ""),
			CenterLat: getEnvAsFloat("MAPS_CENTER_LAT", 52.2297),
			CenterLng: getEnvAsFloat("MAPS_CENTER_LNG", 21.0122),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0.0
	_, err := fmt.Sscanf(valueStr, "%g", &value)
	if err != nil {
		return defaultValue
	}

	return value
}
