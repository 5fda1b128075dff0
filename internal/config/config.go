package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders the pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores event-bus settings. Empty brokers or topic disable publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Payment stores payment simulator settings.
type Payment struct {
	SettleDelay time.Duration
}

// Fleet stores fleet maintenance settings.
type Fleet struct {
	ReleaseInterval time.Duration
}

// Config stores service settings.
type Config struct {
	Port    int
	DB      DB
	Kafka   Kafka
	Payment Payment
	Fleet   Fleet
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:    DefaultPort(),
		DB:      DefaultDB(),
		Payment: DefaultPayment(),
		Fleet:   DefaultFleet(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		cfg.DB.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		cfg.DB.Port = v
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		cfg.DB.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.DB.Pass = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		cfg.DB.Name = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}
	cfg.Kafka.Topic = os.Getenv("KAFKA_TOPIC")

	if v := os.Getenv("PAYMENT_SETTLE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PAYMENT_SETTLE_DELAY: %w", err)
		}
		cfg.Payment.SettleDelay = d
	}
	if v := os.Getenv("FLEET_RELEASE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FLEET_RELEASE_INTERVAL: %w", err)
		}
		cfg.Fleet.ReleaseInterval = d
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid postgres port: %q", cfg.DB.Port)
	}
	if cfg.Payment.SettleDelay <= 0 {
		return nil, fmt.Errorf("invalid payment settle delay: %v", cfg.Payment.SettleDelay)
	}
	if cfg.Fleet.ReleaseInterval <= 0 {
		return nil, fmt.Errorf("invalid fleet release interval: %v", cfg.Fleet.ReleaseInterval)
	}
	return cfg, nil
}
