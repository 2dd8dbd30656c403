package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"basic_config": {"server_address": ":9090"},
		"databases": {"sqlite3": {"dsn": "data/app.db"}},
		"auth": {"jwt_secret": "s3cret"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BasicConfig.ServerAddress != ":9090" {
		t.Fatalf("unexpected server address: %q", cfg.BasicConfig.ServerAddress)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Fatalf("expected default ttl 24, got %d", cfg.Auth.TokenTTLHours)
	}
	dsn := cfg.Databases["sqlite3"].DSN
	if !filepath.IsAbs(dsn) {
		t.Fatalf("sqlite dsn not resolved relative to config dir: %q", dsn)
	}
}

func TestLoadRequiresSecretAndDatabase(t *testing.T) {
	path := writeConfig(t, `{"databases": {"sqlite3": {"dsn": "app.db"}}}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing jwt secret")
	}

	path = writeConfig(t, `{"auth": {"jwt_secret": "s3cret"}}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing databases")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"databases": {"sqlite3": {"dsn": "app.db"}},
		"auth": {"jwt_secret": "from-file"},
		"providers": {"openai": {"model": "gpt-4o-mini"}}
	}`)
	t.Setenv("AMORAGO_JWT_SECRET", "from-env")
	t.Setenv("AMORAGO_OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Fatalf("jwt secret not overridden: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Providers["openai"].APIKey != "sk-test" {
		t.Fatalf("provider key not overridden: %q", cfg.Providers["openai"].APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
