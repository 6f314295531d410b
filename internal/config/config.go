package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Mail     MailConfig
	CORS     CORSConfig
	LogLevel int
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	// JWTSecret signs every issued token; rotating it invalidates all
	// outstanding tokens.
	JWTSecret string
	TokenTTL  time.Duration
	// HashWorkers bounds how many bcrypt computations may run at once.
	HashWorkers int
	BcryptCost  int
}

type StripeConfig struct {
	SecretKey string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads .env (if present) and the process environment into a Config.
// The result is built once in main and passed by reference; no other package
// reads the environment.
func Load() *Config {
	// .env is a convenience for local runs; deployed environments set real
	// environment variables.
	_ = godotenv.Load(".env")

	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "3306"))
	mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	logLevel, _ := strconv.Atoi(getEnv("LOG_LEVEL", "0"))
	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		tokenTTL = 168 * time.Hour
	}
	hashWorkers, _ := strconv.Atoi(getEnv("HASH_WORKERS", "4"))
	bcryptCost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "10"))

	return &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "gouser"),
			Password: getEnv("DB_PASSWORD", "gopass"),
			Name:     getEnv("DB_NAME", "moviedb"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "my_secret_key"),
			TokenTTL:    tokenTTL,
			HashWorkers: hashWorkers,
			BcryptCost:  bcryptCost,
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:     mailPort,
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			From:     getEnv("EMAIL_FROM", getEnv("EMAIL_USER", "")),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitEnv("CORS_ORIGINS", "http://localhost:3000,https://movie-app-self-five.vercel.app"),
		},
		LogLevel: logLevel,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
