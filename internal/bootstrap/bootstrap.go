package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/bryanwahyu/scamshield/internal/application"
	apphistory "github.com/bryanwahyu/scamshield/internal/application/history"
	appscans "github.com/bryanwahyu/scamshield/internal/application/scans"
	"github.com/bryanwahyu/scamshield/internal/application/source"
	appverdict "github.com/bryanwahyu/scamshield/internal/application/verdict"
	"github.com/bryanwahyu/scamshield/internal/config"
	"github.com/bryanwahyu/scamshield/internal/domain/ai"
	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
	"github.com/bryanwahyu/scamshield/internal/infra/ai/openai"
	"github.com/bryanwahyu/scamshield/internal/infra/classifier"
	mysqlp "github.com/bryanwahyu/scamshield/internal/infra/db/mysql"
	"github.com/bryanwahyu/scamshield/internal/infra/db/postgres"
	"github.com/bryanwahyu/scamshield/internal/infra/db/sqlite"
	"github.com/bryanwahyu/scamshield/internal/infra/kv"
	minioStore "github.com/bryanwahyu/scamshield/internal/infra/storage"
	"github.com/bryanwahyu/scamshield/internal/middleware"
)

// App holds every wired service for one process.
type App struct {
	Config   *config.Config
	Scans    *appscans.Service
	Verdict  *appverdict.Service
	History  *apphistory.Store
	Checkers map[string]middleware.HealthChecker

	closers []func() error
}

// New builds the history backend, the classifier client and the AI adapters
// from cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg, Checkers: map[string]middleware.HealthChecker{}}

	store, err := app.openKV(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("history backend %s: %w", cfg.History.Backend, err)
	}

	history := apphistory.NewStore(store)
	history.Key = cfg.History.Key
	history.MaxRecords = cfg.History.MaxRecords
	history.Clock = application.SystemClock{}
	app.History = history

	app.Verdict = appverdict.NewService(advisor(cfg))

	var cls analysis.Classifier
	if cfg.Classifier.Endpoint == config.ClassifierLocal {
		cls = app.Verdict
	} else {
		cls = classifier.NewClient(cfg.Classifier.Endpoint, cfg.Classifier.Timeout)
	}

	app.Scans = &appscans.Service{
		Source:     source.NewService(extractor(cfg)),
		Classifier: cls,
		History:    history,
	}

	log.Printf("bootstrap history=%s key=%s max_records=%d classifier=%s",
		cfg.History.Backend, history.Key, history.MaxRecords, cfg.Classifier.Endpoint)
	return app, nil
}

// Close releases backend connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openKV(ctx context.Context) (domain.KV, error) {
	cfg := a.Config
	switch cfg.History.Backend {
	case config.BackendMemory:
		return kv.NewMemory(), nil

	case config.BackendFile:
		return kv.NewFile(cfg.History.Dir)

	case config.BackendSQLite:
		repo, err := sqlite.Open(cfg.History.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		a.Checkers["sqlite"] = middleware.CheckFunc(repo.Check)
		return repo, nil

	case config.BackendMySQL:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		return a.sqlKV(ctx, "mysql", db, mysqlp.NewKVRepository(db))

	case config.BackendPostgres:
		db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		return a.sqlKV(ctx, "postgres", db, postgres.NewKVRepository(db))

	case config.BackendMinio:
		st, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
			cfg.Minio.Prefix,
		)
		if err != nil {
			return nil, err
		}
		a.Checkers["minio"] = middleware.CheckFunc(st.Check)
		return st, nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.History.Backend)
}

type sqlKVRepo interface {
	domain.KV
	EnsureSchema(ctx context.Context) error
}

func (a *App) sqlKV(ctx context.Context, name string, db *sql.DB, repo sqlKVRepo) (domain.KV, error) {
	a.closers = append(a.closers, db.Close)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	a.Checkers[name] = &middleware.DatabaseHealthChecker{DB: db}
	return repo, nil
}

// extractor returns nil when no vision key is set; image scans then fall back
// to the placeholder text.
func extractor(cfg *config.Config) ai.Extractor {
	if cfg.Extraction.APIKey == "" {
		return nil
	}
	return openai.NewClient(cfg.Extraction.APIKey, cfg.Extraction.BaseURL, cfg.Extraction.Model)
}

func advisor(cfg *config.Config) ai.Advisor {
	if cfg.Insight.APIKey == "" {
		return nil
	}
	c := openai.NewClient(cfg.Insight.APIKey, cfg.Insight.BaseURL, cfg.Insight.Model)
	c.Temperature = cfg.Insight.Temperature
	return c
}
