// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the key-value connection string for the gorm postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the postgres:// URL used by the migration runner.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret    string
	AccessTTL time.Duration
}

// KafkaConfig holds broker and consumer-group settings.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// ServiceConfig holds all configuration for the hotel booking service.
type ServiceConfig struct {
	Port        string
	AppEnv      string
	CORSOrigins []string
	DBConfig    DatabaseConfig
	JWTConfig   JWTConfig
	KafkaConfig KafkaConfig
}

// Load reads configuration from HOTEL_-prefixed environment variables,
// falling back to development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("HOTEL")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hotel_booking")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL", "24h")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "hotel-booking.")

	appEnv := v.GetString("APP_ENV")
	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		if appEnv == "production" {
			return nil, fmt.Errorf("HOTEL_JWT_SECRET is required in production")
		}
		secret = "dev-secret-do-not-use-in-production"
	}

	accessTTL, err := time.ParseDuration(v.GetString("JWT_ACCESS_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOTEL_JWT_ACCESS_TTL: %w", err)
	}

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:        port,
		AppEnv:      appEnv,
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWTConfig: JWTConfig{
			Secret:    secret,
			AccessTTL: accessTTL,
		},
		KafkaConfig: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
	}, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
