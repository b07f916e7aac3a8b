package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the process needs, loaded once at startup. Anything
// the service cannot run without is validated here so misconfiguration is a
// startup failure, never a per-request one.
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string

	JWTSecret string

	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string

	MailerSendAPIKey string

	CORSOrigin string
	ServerPort string
	LogLevel   string
	AppEnv     string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// LoadConfig reads configuration from the environment, with a .env file as an
// optional source for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:           os.Getenv("MYSQL_USER"),
		DBPassword:       os.Getenv("MYSQL_PASSWORD"),
		DBHost:           os.Getenv("MYSQL_HOST"),
		DBPort:           os.Getenv("MYSQL_PORT"),
		DBName:           os.Getenv("MYSQL_DB"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		KeyPrefix:        os.Getenv("REDIS_KEY_PREFIX"),
		JWTSecret:        os.Getenv("JWT_SECRET_KEY"),
		S3Region:         os.Getenv("AWS_REGION"),
		S3Bucket:         os.Getenv("AWS_BUCKET_NAME"),
		S3AccessKey:      os.Getenv("AWS_ACCESS_KEY"),
		S3SecretKey:      os.Getenv("AWS_ACCESS_SECRET"),
		S3Endpoint:       os.Getenv("AWS_S3_ENDPOINT"),
		MailerSendAPIKey: os.Getenv("MAILERSEND_API_KEY"),
		CORSOrigin:       os.Getenv("CORS_ORIGIN"),
		ServerPort:       os.Getenv("SERVER_PORT"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		AppEnv:           os.Getenv("APP_ENV"),
		// Matches the blunt per-process ceiling the platform has always run
		// with: 250 requests per 5 minutes per client.
		RateLimitMax:    250,
		RateLimitWindow: 5 * time.Minute,
	}
	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "eh:"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "eu-central-1"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET_KEY must be set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("environment variables MYSQL_USER, MYSQL_PASSWORD and MYSQL_DB must be set")
	}
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("environment variable AWS_BUCKET_NAME must be set")
	}
	if cfg.MailerSendAPIKey == "" {
		return nil, fmt.Errorf("environment variable MAILERSEND_API_KEY must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
