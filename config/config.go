package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Artifact store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config is the complete application configuration
type Config struct {
	Server    ServerConfig
	PDF       PDFConfig
	Pricing   PricingConfig
	Artifacts ArtifactConfig
	Database  DatabaseConfig
	Brand     BrandConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	BaseURL string // prefix of download links, e.g. "http://localhost:8080"
}

// PDFConfig holds headless Chrome settings
type PDFConfig struct {
	ChromePath string
	Timeout    time.Duration
}

// PricingConfig points at the business coefficients file
type PricingConfig struct {
	RatesPath string // empty means the built-in defaults
}

// ArtifactConfig selects where generated files are held for download
type ArtifactConfig struct {
	Store string
	TTL   time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// BrandConfig is the company identity printed on proposals
type BrandConfig struct {
	Name        string
	LogoPath    string
	Accent      string
	FooterLabel string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: strings.TrimPrefix(getEnvOrDefault("PORT", "8080"), ":"),
		},
		PDF: PDFConfig{
			ChromePath: getEnvOrDefault("CHROME_PATH", ""),
			Timeout:    getEnvDurationOrDefault("PDF_TIMEOUT", 30*time.Second),
		},
		Pricing: PricingConfig{
			RatesPath: getEnvOrDefault("RATES_CONFIG_PATH", ""),
		},
		Artifacts: ArtifactConfig{
			Store: strings.ToLower(getEnvOrDefault("ARTIFACT_STORE", StoreMemory)),
			TTL:   getEnvDurationOrDefault("ARTIFACT_TTL", 30*time.Minute),
		},
		Database: DatabaseConfig{
			URL:      getEnvOrDefault("DATABASE_URL", ""),
			Host:     getEnvOrDefault("DB_HOST", ""),
			Port:     getEnvIntOrDefault("DB_PORT", 5432),
			User:     getEnvOrDefault("DB_USER", ""),
			Password: getEnvOrDefault("DB_PASSWORD", ""),
			Name:     getEnvOrDefault("DB_NAME", ""),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		Brand: BrandConfig{
			Name:        getEnvOrDefault("BRAND_NAME", "LED Display Solutions"),
			LogoPath:    getEnvOrDefault("BRAND_LOGO_PATH", ""),
			Accent:      getEnvOrDefault("BRAND_ACCENT", "#1F3864"),
			FooterLabel: getEnvOrDefault("PROPOSAL_FOOTER_LABEL", ""),
		},
	}
	config.Server.BaseURL = strings.TrimRight(
		getEnvOrDefault("BASE_URL", "http://localhost:"+config.Server.Port), "/")

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if config.PDF.Timeout <= 0 {
		return fmt.Errorf("PDF_TIMEOUT must be positive, got %s", config.PDF.Timeout)
	}
	if config.Artifacts.TTL <= 0 {
		return fmt.Errorf("ARTIFACT_TTL must be positive, got %s", config.Artifacts.TTL)
	}
	switch config.Artifacts.Store {
	case StoreMemory:
	case StorePostgres:
		if _, err := config.Database.DSN(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("ARTIFACT_STORE must be %q or %q, got %q", StoreMemory, StorePostgres, config.Artifacts.Store)
	}
	return nil
}

// DSN returns DATABASE_URL, or a connection string built from the DB_* variables
func (d DatabaseConfig) DSN() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode), nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
