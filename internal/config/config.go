package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig               `json:"basic_config"`
	Databases   map[string]DatabaseConfig `json:"databases"`
	Redis       RedisConfig               `json:"redis"`
	Auth        AuthConfig                `json:"auth"`
	Providers   map[string]ProviderConfig `json:"providers"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"db_name"`
	Params   string `json:"params"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type AuthConfig struct {
	JWTSecret     string `json:"jwt_secret"`
	TokenTTLHours int    `json:"token_ttl_hours"`
}

type ProviderConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
}

// Load reads configuration from the provided path (defaults to config.json).
// Environment variables override secrets so they can stay out of the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if len(cfg.Databases) == 0 {
		return nil, fmt.Errorf("at least one database must be configured")
	}
	if sqlite, ok := cfg.Databases["sqlite3"]; ok && sqlite.DSN != "" && !filepath.IsAbs(sqlite.DSN) {
		sqlite.DSN = filepath.Join(filepath.Dir(absPath), sqlite.DSN)
		cfg.Databases["sqlite3"] = sqlite
	}

	if secret := os.Getenv("AMORAGO_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret must be configured")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 24
	}

	applyProviderOverrides(&cfg)

	return &cfg, nil
}

// applyProviderOverrides lets provider API keys come from the environment,
// e.g. AMORAGO_OPENAI_API_KEY for the "openai" provider.
func applyProviderOverrides(cfg *Config) {
	for name, prov := range cfg.Providers {
		envKey := "AMORAGO_" + upperSnake(name) + "_API_KEY"
		if v := os.Getenv(envKey); v != "" {
			prov.APIKey = v
			cfg.Providers[name] = prov
		}
	}
}

func upperSnake(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		if r == '-' {
			r = '_'
		}
		out = append(out, r)
	}
	return string(out)
}
