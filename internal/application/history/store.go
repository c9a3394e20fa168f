package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/scamshield/internal/application"
	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// DefaultKey is the collection key used when none is configured.
const DefaultKey = "scamshield_history"

// DefaultMaxRecords bounds the collection when no bound is configured.
const DefaultMaxRecords = 500

// Store implements domain.Repository on top of a single KV key holding a JSON
// array of records, newest first.
type Store struct {
	KV         domain.KV
	Key        string
	MaxRecords int // 0 = unbounded
	Clock      application.Clock

	mu sync.Mutex
}

// NewStore builds a Store with default key, bound and clock.
func NewStore(kv domain.KV) *Store {
	return &Store{
		KV:         kv,
		Key:        DefaultKey,
		MaxRecords: DefaultMaxRecords,
		Clock:      application.SystemClock{},
	}
}

var _ domain.Repository = (*Store)(nil)

// Save assigns id and date, prepends the record and persists the whole collection.
func (s *Store) Save(ctx context.Context, e domain.Entry) (domain.ScanRecord, error) {
	if !e.Type.Valid() {
		return domain.ScanRecord{}, fmt.Errorf("%w: type %q", domain.ErrInvalidEntry, e.Type)
	}
	if !e.RiskLevel.Valid() {
		return domain.ScanRecord{}, fmt.Errorf("%w: risk level %q", domain.ErrInvalidEntry, e.RiskLevel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		return domain.ScanRecord{}, fmt.Errorf("generate id: %w", err)
	}
	rec := domain.ScanRecord{
		ID:        id.String(),
		Text:      e.Text,
		Date:      s.now(),
		RiskLevel: e.RiskLevel,
		Score:     e.Score,
		Type:      e.Type,
	}

	existing, err := s.read(ctx)
	if err != nil {
		return domain.ScanRecord{}, fmt.Errorf("persist history: %w", err)
	}
	updated := make([]domain.ScanRecord, 0, len(existing)+1)
	updated = append(updated, rec)
	updated = append(updated, existing...)
	if s.MaxRecords > 0 && len(updated) > s.MaxRecords {
		updated = updated[:s.MaxRecords]
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return domain.ScanRecord{}, fmt.Errorf("encode history: %w", err)
	}
	if err := s.KV.Put(ctx, s.key(), data); err != nil {
		return domain.ScanRecord{}, fmt.Errorf("persist history: %w", err)
	}
	return rec, nil
}

// List returns every record newest first. Callers own the returned slice.
func (s *Store) List(ctx context.Context) []domain.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Search filters List by a case-insensitive substring of the record text.
func (s *Store) Search(ctx context.Context, term string) []domain.ScanRecord {
	all := s.List(ctx)
	if term == "" {
		return all
	}
	needle := strings.ToLower(term)
	out := make([]domain.ScanRecord, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.Text), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Clear deletes the whole collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.KV.Delete(ctx, s.key()); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// load decodes the persisted collection; any read problem yields an empty one.
func (s *Store) load(ctx context.Context) []domain.ScanRecord {
	recs, err := s.read(ctx)
	if err != nil {
		log.Printf("history: read key=%s failed, treating as empty: %v", s.key(), err)
		return []domain.ScanRecord{}
	}
	return recs
}

// read treats an absent key and unparseable data as an empty collection.
// Backend errors are returned so Save never overwrites records it could not read.
func (s *Store) read(ctx context.Context) ([]domain.ScanRecord, error) {
	data, err := s.KV.Get(ctx, s.key())
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.ScanRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read key=%s: %w", s.key(), err)
	}
	if len(data) == 0 {
		return []domain.ScanRecord{}, nil
	}
	var recs []domain.ScanRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Printf("history: key=%s holds unparseable data, treating as empty: %v", s.key(), err)
		return []domain.ScanRecord{}, nil
	}
	if recs == nil {
		recs = []domain.ScanRecord{}
	}
	return recs, nil
}

func (s *Store) key() string {
	if s.Key == "" {
		return DefaultKey
	}
	return s.Key
}

func (s *Store) now() time.Time {
	if s.Clock == nil {
		return application.SystemClock{}.Now()
	}
	return s.Clock.Now().UTC()
}
