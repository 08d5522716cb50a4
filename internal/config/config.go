package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration. See .env.example for the variables.
type Config struct {
	Port           string
	TemplateGlob   string
	FormEndpoint   string
	FormTimeout    time.Duration
	SessionTTL     time.Duration
	AllowedOrigins []string
	MetricsDSN     string
	AdminUsername  string
	AdminPassword  string
}

// Load reads envFile (if present) into the environment and builds a Config
// from it, falling back to development defaults.
func Load(envFile string) Config {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		TemplateGlob:   getEnv("TEMPLATE_GLOB", "templates/*"),
		FormEndpoint:   getEnv("FORM_ENDPOINT", "https://formspree.io/f/mblgrnzb"),
		FormTimeout:    getDuration("FORM_TIMEOUT", 10*time.Second),
		SessionTTL:     getDuration("SESSION_TTL", 30*time.Minute),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		MetricsDSN:     getEnv("METRICS_DSN", "file::memory:"),
		AdminUsername:  getEnv("ADMIN_USERNAME", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, raw, fallback)
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
