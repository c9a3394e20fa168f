package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// KVEntry is one row of the kv_entries table.
type KVEntry struct {
	Name      string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "kv_entries" }

// KVRepository keeps history collections in an embedded SQLite file via gorm.
type KVRepository struct {
	db *gorm.DB
}

// Open opens (or creates) the database file and migrates the table.
func Open(path string) (*KVRepository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return &KVRepository{db: db}, nil
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var e KVEntry
	err := r.db.WithContext(ctx).First(&e, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	e := KVEntry{Name: key, Value: value, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&KVEntry{}, "name = ?", key).Error
}

// Check pings the underlying connection.
func (r *KVRepository) Check(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the database file.
func (r *KVRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
