package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// History backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
	BackendMinio    = "minio"
)

// ClassifierLocal as classifier.endpoint runs the keyword/advisor backend
// in-process instead of calling it over HTTP.
const ClassifierLocal = "local"

type Config struct {
	Server struct {
		Port        int      `yaml:"port"`
		CORSOrigins []string `yaml:"corsOrigins"`
		// ServeClassifier mounts POST /api/analyze on this server.
		ServeClassifier bool `yaml:"serveClassifier"`
	} `yaml:"server"`

	Classifier struct {
		Endpoint string        `yaml:"endpoint"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"classifier"`

	Extraction struct {
		APIKey        string `yaml:"apiKey"`
		BaseURL       string `yaml:"baseURL"`
		Model         string `yaml:"model"`
		MaxImageBytes int64  `yaml:"maxImageBytes"`
	} `yaml:"extraction"`

	Insight struct {
		APIKey      string  `yaml:"apiKey"`
		BaseURL     string  `yaml:"baseURL"`
		Model       string  `yaml:"model"`
		Temperature float32 `yaml:"temperature"`
	} `yaml:"insight"`

	History struct {
		Backend    string `yaml:"backend"`
		Key        string `yaml:"key"`
		MaxRecords int    `yaml:"maxRecords"`
		Dir        string `yaml:"dir"`
		SQLitePath string `yaml:"sqlitePath"`
	} `yaml:"history"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Postgres struct {
		DSN string `yaml:"dsn"`
	} `yaml:"postgres"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
		Prefix     string `yaml:"prefix"`
	} `yaml:"minio"`
}

// Default returns a config that runs locally with no external services besides
// the classifier.
func Default() *Config {
	var c Config
	c.Server.Port = 8080
	c.Server.CORSOrigins = []string{"*"}
	c.Server.ServeClassifier = true
	c.Classifier.Endpoint = "http://localhost:8080"
	c.Classifier.Timeout = 30 * time.Second
	c.Extraction.MaxImageBytes = 10 << 20
	c.Insight.BaseURL = "https://api.groq.com/openai/v1"
	c.Insight.Temperature = 0.3
	c.History.Backend = BackendFile
	c.History.Key = "scamshield_history"
	c.History.MaxRecords = 500
	c.History.Dir = "data"
	c.History.SQLitePath = "data/scamshield.db"
	c.Database.Port = 3306
	c.Minio.BucketName = "scamshield"
	return &c
}

// Load baca file config.yaml over the defaults. A missing file is not an
// error; env overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CLASSIFIER_ENDPOINT"); v != "" {
		c.Classifier.Endpoint = v
	}
	if v := os.Getenv("HISTORY_BACKEND"); v != "" {
		c.History.Backend = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.Extraction.APIKey == "" {
		c.Extraction.APIKey = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" && c.Insight.APIKey == "" {
		c.Insight.APIKey = v
	}
}

// Validate checks the fields every backend depends on.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Classifier.Endpoint == "" {
		return errors.New("classifier.endpoint is required")
	}
	if c.History.MaxRecords < 0 {
		return errors.New("history.maxRecords must be >= 0")
	}
	switch c.History.Backend {
	case BackendMemory:
	case BackendFile:
		if c.History.Dir == "" {
			return errors.New("history.dir is required for the file backend")
		}
	case BackendSQLite:
		if c.History.SQLitePath == "" {
			return errors.New("history.sqlitePath is required for the sqlite backend")
		}
	case BackendMySQL:
		if c.Database.Host == "" || c.Database.Name == "" {
			return errors.New("database.host and database.name are required for the mysql backend")
		}
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required for the postgres backend")
		}
	case BackendMinio:
		if c.Minio.Endpoint == "" || c.Minio.BucketName == "" {
			return errors.New("minio.endpoint and minio.bucketName are required for the minio backend")
		}
	default:
		return fmt.Errorf("unknown history.backend %q", c.History.Backend)
	}
	return nil
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
