package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Migrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig bounds login attempts per client IP.
type RateLimitConfig struct {
	LoginRPS   float64
	LoginBurst int
}

// ClientConfig configures the command line client built on pkg/session.
type ClientConfig struct {
	APIURL          string
	SessionFile     string
	RefreshInterval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGIN_RATE_LIMIT_RPS", 1.0)
	v.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)
}

// LoadConfig reads an optional .env file into the environment, then resolves
// every key from the environment with defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return Load(viper.New())
}

// Load builds the configuration from v. Environment variables override defaults.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        secret,
			AccessExpiry:  durationOr(v.GetString("JWT_ACCESS_EXPIRY"), 15*time.Minute),
			RefreshExpiry: durationOr(v.GetString("JWT_REFRESH_EXPIRY"), 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			LoginRPS:   v.GetFloat64("LOGIN_RATE_LIMIT_RPS"),
			LoginBurst: v.GetInt("LOGIN_RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// LoadClientConfig resolves the client settings. No server secret is needed.
func LoadClientConfig(v *viper.Viper, defaultSessionFile string) *ClientConfig {
	v.SetDefault("CLINIC_API_URL", "http://localhost:8080")
	v.SetDefault("CLINIC_SESSION_FILE", defaultSessionFile)
	v.AutomaticEnv()

	return &ClientConfig{
		APIURL:          v.GetString("CLINIC_API_URL"),
		SessionFile:     v.GetString("CLINIC_SESSION_FILE"),
		RefreshInterval: durationOr(v.GetString("SESSION_REFRESH_INTERVAL"), 15*time.Minute),
	}
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
