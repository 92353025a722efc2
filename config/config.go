package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	ApiPrefix string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTKey    string
	JWTExpire time.Duration

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // bcrypt hash, takes precedence over AdminPassword

	UploadDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		ApiPrefix: getEnv("API_PREFIX", "api"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "carmart"),
		DBPort:     getEnv("DB_PORT", "5432"),

		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTExpire: getEnvDuration("JWT_EXPIRE", time.Hour),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		UploadDir: getEnv("UPLOAD_DIR", "./public/uploads"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AdminPasswordHash == "" && AppConfig.AdminPassword == "admin" {
		log.Println("Warning: Using default admin credentials. Update them in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration retrieves an environment variable as a duration or returns the default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
