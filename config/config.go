package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	RedisAddr  string
	JWTSecret  string
	ServerPort string

	AdminEmail    string
	AdminPassword string

	// CacheQuota bounds the in-memory cache store, in bytes.
	CacheQuota int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:        getEnv("DB_HOST", ""),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "academy"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@academy.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		CacheQuota:    0,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
