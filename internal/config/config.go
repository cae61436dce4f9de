package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Alert Gateway Config (рассылка SMS-оповещений по городу)
	AlertGatewayURL string `env:"ALERT_GATEWAY_URL"`
	AlertGatewayKey string `env:"ALERT_GATEWAY_KEY"`

	// External Providers
	NominatimBaseURL   string        `env:"NOMINATIM_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	NominatimUserAgent string        `env:"NOMINATIM_USER_AGENT" envDefault:"EvacuationSystem/1.0"`
	OpenRouteBaseURL   string        `env:"OPENROUTE_BASE_URL" envDefault:"https://api.openrouteservice.org/v2/directions"`
	OpenRouteAPIKey    string        `env:"OPENROUTESERVICE_API_KEY"`
	ProviderTimeout    time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`

	// Zone Policy Config
	// Пороги активации и деактивации намеренно независимые: зона объявляется
	// быстро, а снимается медленно. Значения нельзя сводить к одной константе.
	ZoneActivationThreshold   int           `env:"ZONE_ACTIVATION_THRESHOLD" envDefault:"1"`
	ZoneDeactivationThreshold int           `env:"ZONE_DEACTIVATION_THRESHOLD" envDefault:"50"`
	ReportWindow              time.Duration `env:"REPORT_WINDOW" envDefault:"24h"`
	IncidentTTL               time.Duration `env:"INCIDENT_TTL" envDefault:"72h"`
	ZoneDangerRadiusKm        float64       `env:"ZONE_DANGER_RADIUS_KM" envDefault:"5"`
	FacilityBufferKm          float64       `env:"FACILITY_BUFFER_KM" envDefault:"3"`
	EscapeBufferKm            float64       `env:"ESCAPE_BUFFER_KM" envDefault:"8"`
	PlanningRadiusKm          float64       `env:"PLANNING_RADIUS_KM" envDefault:"10"`
	EscapeBaseDistanceKm      float64       `env:"ESCAPE_BASE_DISTANCE_KM" envDefault:"10"`
	MaintenanceCronSpec       string        `env:"MAINTENANCE_CRON_SPEC" envDefault:"0 * * * *"`
	ZoneCacheTTL              time.Duration `env:"ZONE_CACHE_TTL" envDefault:"1m"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AlertGatewayURL:   os.Getenv("ALERT_GATEWAY_URL"),
		AlertGatewayKey:   os.Getenv("ALERT_GATEWAY_KEY"),

		NominatimBaseURL:   getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "EvacuationSystem/1.0"),
		OpenRouteBaseURL:   getEnv("OPENROUTE_BASE_URL", "https://api.openrouteservice.org/v2/directions"),
		OpenRouteAPIKey:    os.Getenv("OPENROUTESERVICE_API_KEY"),
		ProviderTimeout:    getEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second),

		ZoneActivationThreshold:   getEnvAsInt("ZONE_ACTIVATION_THRESHOLD", 1),
		ZoneDeactivationThreshold: getEnvAsInt("ZONE_DEACTIVATION_THRESHOLD", 50),
		ReportWindow:              getEnvAsDuration("REPORT_WINDOW", 24*time.Hour),
		IncidentTTL:               getEnvAsDuration("INCIDENT_TTL", 72*time.Hour),
		ZoneDangerRadiusKm:        getEnvAsFloat("ZONE_DANGER_RADIUS_KM", 5),
		FacilityBufferKm:          getEnvAsFloat("FACILITY_BUFFER_KM", 3),
		EscapeBufferKm:            getEnvAsFloat("ESCAPE_BUFFER_KM", 8),
		PlanningRadiusKm:          getEnvAsFloat("PLANNING_RADIUS_KM", 10),
		EscapeBaseDistanceKm:      getEnvAsFloat("ESCAPE_BASE_DISTANCE_KM", 10),
		MaintenanceCronSpec:       getEnv("MAINTENANCE_CRON_SPEC", "0 * * * *"),
		ZoneCacheTTL:              getEnvAsDuration("ZONE_CACHE_TTL", time.Minute),

		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
