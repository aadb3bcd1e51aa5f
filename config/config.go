package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	Port          string
	Env           string
	StoreTimezone string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
}

// StoreLocation is the single fixed timezone used for all display and
// input. Everything persisted is UTC.
var StoreLocation *time.Location

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		StoreTimezone: os.Getenv("STORE_TIMEZONE"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
	}
	if config.StoreTimezone == "" {
		config.StoreTimezone = "Asia/Kolkata"
	}

	loc, err := time.LoadLocation(config.StoreTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEZONE %q: %v", config.StoreTimezone, err)
	}
	StoreLocation = loc

	return config, nil
}
