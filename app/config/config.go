package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Config carries everything the application reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
}

// Load builds a Config from environment variables with local-dev defaults.
func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "mokykla-dev-secret"),
	}

	if cfg.DatabaseURL == "" {
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getenv("DB_NAME", "mokykla")

		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			cfg.DatabaseURL += " password=" + password
		}
	}

	return cfg
}

// OpenDB opens and verifies the database connection. The caller owns the
// handle and passes it to every component that needs the store.
func OpenDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("Database connected successfully")
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
