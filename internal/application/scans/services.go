package scans

import (
	"context"
	"errors"
	"fmt"

	"github.com/bryanwahyu/scamshield/internal/application/source"
	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// Service implements use-cases untuk Scan: candidate text -> classifier ->
// normalized result -> history record.
type Service struct {
	Source     *source.Service
	Classifier analysis.Classifier
	History    domain.Repository
}

//
// ==== USE CASES ====
//

// ScanCommand is one user submission.
type ScanCommand struct {
	Text string
	Type domain.ScanType
}

// ScanResult carries the normalized analysis, the stored record and the
// original text with flagged phrases marked.
type ScanResult struct {
	Result     analysis.Result   `json:"result"`
	Record     domain.ScanRecord `json:"record"`
	MarkedText string            `json:"markedText"`
}

// Scan classifies the submitted text and records it. Empty input fails with
// analysis.ErrEmptyInput before any classifier call; a classifier failure
// returns analysis.ErrClassifierUnavailable and writes nothing.
func (s *Service) Scan(ctx context.Context, cmd ScanCommand) (ScanResult, error) {
	typ := cmd.Type
	if typ == "" {
		typ = domain.TypeText
	}
	if !typ.Valid() {
		return ScanResult{}, fmt.Errorf("%w: type %q", domain.ErrInvalidEntry, typ)
	}

	text, err := s.Source.FromText(cmd.Text)
	if err != nil {
		return ScanResult{}, err
	}

	// jalankan classifier sekali, tanpa retry
	verdict, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		if !errors.Is(err, analysis.ErrClassifierUnavailable) {
			err = fmt.Errorf("%w: %w", analysis.ErrClassifierUnavailable, err)
		}
		return ScanResult{}, err
	}

	result := analysis.Normalize(verdict)
	out := ScanResult{
		Result:     result,
		MarkedText: analysis.Render(text, result.Highlights),
	}

	rec, err := s.History.Save(ctx, domain.Entry{
		Text:      text,
		RiskLevel: result.RiskLevel,
		Score:     result.Score,
		Type:      typ,
	})
	if err != nil {
		return out, fmt.Errorf("save scan record: %w", err)
	}
	out.Record = rec
	return out, nil
}

// Extract turns an uploaded image into editable candidate text.
func (s *Service) Extract(ctx context.Context, image []byte, mimeType string) source.Extraction {
	return s.Source.FromImage(ctx, image, mimeType)
}

// SearchHistory ambil semua scan, atau yang cocok dengan term
func (s *Service) SearchHistory(ctx context.Context, term string) []domain.ScanRecord {
	return s.History.Search(ctx, term)
}

// ClearHistory hapus semua record
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.History.Clear(ctx)
}
