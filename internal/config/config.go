package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
}

// Load reads configuration from the environment, optionally seeded
// from a .env file. Absent DATABASE_URL or JWT_SECRET is not fatal:
// the caller degrades the matching subsystem and this function logs
// the consequence.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("config: DATABASE_URL is empty, falling back to in-memory storage (listing data disabled)")
	}
	if cfg.JWTSecret == "" {
		log.Println("config: JWT_SECRET is empty, authenticated routes disabled")
	}

	return cfg
}
