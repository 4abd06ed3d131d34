package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	DBPath            string
	TimeZone          string
	SecretKey         string
	AdminPasswordHash string
	CookieSecure      bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "data/studybuddy.db"),
		TimeZone:          getEnv("TZ", "UTC"),
		SecretKey:         getEnv("SECRET_KEY", "change_me_in_production"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		CookieSecure:      getBoolEnv("COOKIE_SECURE", false),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}
