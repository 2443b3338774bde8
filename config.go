package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// config is read once at startup from the environment (after .env is loaded).
type config struct {
	Host           string   // HOST, default localhost
	Port           string   // PORT, default 3000
	APITokenHash   string   // API_TOKEN_HASH, bcrypt hash from cmd/hash-token; empty = open API
	TrustedProxies []string // TRUSTED_PROXIES, comma-separated; empty = trust none
}

// loadConfig reads the server settings. It fails on a non-numeric PORT or an
// API_TOKEN_HASH that is not a bcrypt hash, since either would only surface
// later as a confusing listen error or a 401 on every request.
func loadConfig() (config, error) {
	cfg := config{
		Host:         getEnv("HOST", "localhost"),
		Port:         getEnv("PORT", "3000"),
		APITokenHash: strings.TrimSpace(os.Getenv("API_TOKEN_HASH")),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		return config{}, fmt.Errorf("invalid PORT %q: must be 1-65535", cfg.Port)
	}

	if cfg.APITokenHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.APITokenHash)); err != nil {
			return config{}, fmt.Errorf("invalid API_TOKEN_HASH: %w", err)
		}
	}

	for _, p := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, p)
		}
	}

	return cfg, nil
}

// addr is the listen address for router.Run.
func (c config) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
