package main

import (
	"log"
	"os"
	"time"
)

// Config is read from the environment; .env is loaded by godotenv/autoload.
type Config struct {
	Port        string
	GitHubUser  string
	GitHubAPI   string
	ContentPath string
	CacheDSN    string
	CacheTTL    time.Duration

	AdminUsername string
	AdminPassword string
}

const defaultCacheTTL = 15 * time.Minute

func loadConfig() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		GitHubUser:    os.Getenv("GITHUB_USER"),
		GitHubAPI:     os.Getenv("GITHUB_API"),
		ContentPath:   os.Getenv("SITE_CONTENT"),
		CacheDSN:      os.Getenv("CACHE_DSN"),
		CacheTTL:      defaultCacheTTL,
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if ttl := os.Getenv("REPO_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d < 0 {
			log.Printf("Ignoring REPO_CACHE_TTL=%q, using %v", ttl, defaultCacheTTL)
		} else {
			cfg.CacheTTL = d
		}
	}

	// Default credentials for development (set both in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}

	return cfg
}
