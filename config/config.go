// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDatabase   string
	DatabaseURL     string
	JWTSecret       string
	AdminAPIKey     string
	UploadsDir      string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	// BackupDir receives a daily copy of UploadsDir. Empty disables backups.
	BackupDir       string
	BackupRetention time.Duration
	BackupHour      int
}

// Load reads .env if present and then the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		Env:           getenv("APP_ENV", "development"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DB", "smartshop"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),
		UploadsDir:    getenv("UPLOADS_DIR", "./uploads"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "smartshop"), getenv("DB_PORT", "5432"),
		)
	}

	secs, err := strconv.Atoi(getenv("SHUTDOWN_TIMEOUT_SECONDS", "10"))
	if err != nil || secs <= 0 {
		return nil, fmt.Errorf("config: invalid SHUTDOWN_TIMEOUT_SECONDS %q", os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"))
	}
	cfg.ShutdownTimeout = time.Duration(secs) * time.Second

	cfg.BackupDir = os.Getenv("BACKUP_DIR")
	days, err := strconv.Atoi(getenv("BACKUP_RETENTION_DAYS", "4"))
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("config: invalid BACKUP_RETENTION_DAYS %q", os.Getenv("BACKUP_RETENTION_DAYS"))
	}
	cfg.BackupRetention = time.Duration(days) * 24 * time.Hour
	cfg.BackupHour, err = strconv.Atoi(getenv("BACKUP_HOUR", "2"))
	if err != nil || cfg.BackupHour < 0 || cfg.BackupHour > 23 {
		return nil, fmt.Errorf("config: invalid BACKUP_HOUR %q", os.Getenv("BACKUP_HOUR"))
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("config: ADMIN_API_KEY is required")
	}
	return cfg, nil
}

// Production reports whether the service runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
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
