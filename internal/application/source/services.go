package source

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bryanwahyu/scamshield/internal/domain/ai"
	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

// Placeholder replaces the extracted text when the engine fails, so the user
// can type the message by hand.
const Placeholder = "Could not extract text from the image. Please edit the text manually."

// ExtractionStatus enum
type ExtractionStatus string

const (
	StatusExtracted ExtractionStatus = "extracted"
	StatusFailed    ExtractionStatus = "failed"
)

// Extraction is the observable outcome of FromImage. Err is set only when
// Status is StatusFailed and always wraps ai.ErrExtraction.
type Extraction struct {
	Text   string
	Status ExtractionStatus
	Err    error
}

// Service is the Text Source Adapter: direct text or image -> candidate text.
type Service struct {
	extractor ai.Extractor
}

func NewService(extractor ai.Extractor) *Service {
	return &Service{extractor: extractor}
}

// FromText trims input and rejects it when nothing is left.
func (s *Service) FromText(input string) (string, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "", analysis.ErrEmptyInput
	}
	return text, nil
}

// FromImage asks the extraction engine for the image's text. It never returns
// an error; failures come back as a StatusFailed extraction with Placeholder.
func (s *Service) FromImage(ctx context.Context, image []byte, mimeType string) Extraction {
	if s.extractor == nil {
		return failed(errors.New("no extraction engine configured"))
	}
	text, err := s.extractor.ExtractText(ctx, image, mimeType)
	if err != nil {
		log.Printf("extraction failed mime=%s bytes=%d: %v", mimeType, len(image), err)
		return failed(err)
	}
	return Extraction{Text: text, Status: StatusExtracted}
}

func failed(cause error) Extraction {
	err := cause
	if !errors.Is(cause, ai.ErrExtraction) {
		err = fmt.Errorf("%w: %w", ai.ErrExtraction, cause)
	}
	return Extraction{Text: Placeholder, Status: StatusFailed, Err: err}
}
