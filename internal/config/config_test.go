package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.App.SearchDebounceMs != 500 {
		t.Fatalf("SearchDebounceMs = %d, want 500", cfg.App.SearchDebounceMs)
	}
	if cfg.App.HistogramSample != 1000 {
		t.Fatalf("HistogramSample = %d, want 1000", cfg.App.HistogramSample)
	}
	if cfg.App.RideListLimit != 50 || cfg.App.UserListLimit != 100 {
		t.Fatalf("list limits = %d/%d, want 50/100", cfg.App.RideListLimit, cfg.App.UserListLimit)
	}
	if cfg.DB.Port != 5432 || cfg.RabbitMq.Port != 5672 {
		t.Fatalf("default ports wrong: db=%d mq=%d", cfg.DB.Port, cfg.RabbitMq.Port)
	}
}

func TestNewReadsYamlAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
db:
  host: db.internal
  port: 6543
  user: ridehail_user
  password: ridehail_pass
  database: ridehail_db
app:
  jwt_secret: from-yaml
  search_debounce_ms: 250
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PORT", "7654")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.DB.Host != "db.internal" {
		t.Fatalf("DB.Host = %q, want yaml value", cfg.DB.Host)
	}
	if cfg.App.SearchDebounceMs != 250 {
		t.Fatalf("SearchDebounceMs = %d, want yaml value 250", cfg.App.SearchDebounceMs)
	}
	// env wins over yaml
	if cfg.App.JwtSecret != "from-env" {
		t.Fatalf("JwtSecret = %q, want env value", cfg.App.JwtSecret)
	}
	if cfg.DB.Port != 7654 {
		t.Fatalf("DB.Port = %d, want env value 7654", cfg.DB.Port)
	}
}

func TestNewIgnoresNonNumericEnv(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.DB.Port != 5432 {
		t.Fatalf("DB.Port = %d, want default kept", cfg.DB.Port)
	}
}
