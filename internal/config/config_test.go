package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.History.Backend != BackendFile || cfg.History.MaxRecords != 500 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Classifier.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Classifier.Timeout)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeFile(t, `
server:
  port: 9090
classifier:
  endpoint: http://classifier:8080
  timeout: 5s
history:
  backend: mysql
  maxRecords: 0
database:
  host: db
  port: 3307
  user: app
  password: secret
  name: scamshield
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Classifier.Timeout != 5*time.Second {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.History.MaxRecords != 0 || cfg.History.Key != "scamshield_history" {
		t.Fatalf("unexpected history section %+v", cfg.History)
	}
	if got := cfg.MySQLDSN(); got != "app:secret@tcp(db:3307)/scamshield?parseTime=true&charset=utf8mb4&loc=UTC" {
		t.Fatalf("unexpected dsn %s", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLASSIFIER_ENDPOINT", "http://env:1234")
	t.Setenv("HISTORY_BACKEND", "memory")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Classifier.Endpoint != "http://env:1234" || cfg.History.Backend != BackendMemory || cfg.Insight.APIKey != "gsk_test" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown backend":  "history:\n  backend: redis\n",
		"mysql incomplete": "history:\n  backend: mysql\n",
		"bad port":         "server:\n  port: 70000\n",
		"negative bound":   "history:\n  maxRecords: -1\n",
		"bad yaml":         "server: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoadLimitKeys(t *testing.T) {
	p := writeFile(t, `
history:
  maxRecords: 42
extraction:
  maxImageBytes: 2048
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.History.MaxRecords != 42 || cfg.Extraction.MaxImageBytes != 2048 {
		t.Fatalf("limit keys not applied: history=%+v extraction=%+v", cfg.History, cfg.Extraction)
	}
}
