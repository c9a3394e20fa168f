package bootstrap

import (
	"context"
	"errors"
	"testing"

	appscans "github.com/bryanwahyu/scamshield/internal/application/scans"
	"github.com/bryanwahyu/scamshield/internal/config"
	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

func TestNewLocalClassifierMemoryBackend(t *testing.T) {
	cfg := config.Default()
	cfg.History.Backend = config.BackendMemory
	cfg.Classifier.Endpoint = config.ClassifierLocal

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.Close()

	res, err := app.Scans.Scan(context.Background(), appscans.ScanCommand{Text: "Congratulations winner, claim your prize"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if res.Result.RiskLevel != analysis.RiskSuspicious || res.Result.Score != 45 {
		t.Fatalf("unexpected result %+v", res.Result)
	}
	if n := len(app.History.List(context.Background())); n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}
}

func TestNewFileBackend(t *testing.T) {
	cfg := config.Default()
	cfg.History.Dir = t.TempDir()
	cfg.History.Key = "scans"
	cfg.History.MaxRecords = 2

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.Close()

	if app.History.Key != "scans" || app.History.MaxRecords != 2 {
		t.Fatalf("history not configured: %+v", app.History)
	}
	if len(app.Checkers) != 0 {
		t.Fatalf("file backend should register no checkers, got %v", app.Checkers)
	}
}

func TestNewClassifierDownIsReported(t *testing.T) {
	cfg := config.Default()
	cfg.History.Backend = config.BackendMemory
	cfg.Classifier.Endpoint = "http://127.0.0.1:1"

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.Close()

	_, err = app.Scans.Scan(context.Background(), appscans.ScanCommand{Text: "hello"})
	if !errors.Is(err, analysis.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.History.Backend = "redis"
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
