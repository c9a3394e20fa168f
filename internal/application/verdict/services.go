package verdict

import (
	"context"
	"log"
	"strings"

	"github.com/bryanwahyu/scamshield/internal/domain/ai"
	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
	domain "github.com/bryanwahyu/scamshield/internal/domain/verdict"
)

// Service is the classifier backend behind POST /api/analyze.
type Service struct {
	advisor ai.Advisor
}

// NewService accepts a nil advisor; verdicts then rely on keywords only.
func NewService(advisor ai.Advisor) *Service {
	return &Service{advisor: advisor}
}

// Analyze produces the raw verdict for text. It fails only on empty input;
// advisor problems degrade to fallback advice.
func (s *Service) Analyze(ctx context.Context, text string) (analysis.RawVerdict, error) {
	if strings.TrimSpace(text) == "" {
		return analysis.RawVerdict{}, analysis.ErrEmptyInput
	}

	v := domain.Preliminary(text)
	advice, dangerous := s.insight(ctx, text, v)
	v.Advice = advice
	return domain.Escalate(v, dangerous), nil
}

// Classify lets the backend stand in for the remote classifier.
func (s *Service) Classify(ctx context.Context, text string) (analysis.RawVerdict, error) {
	return s.Analyze(ctx, text)
}

var _ analysis.Classifier = (*Service)(nil)

func (s *Service) insight(ctx context.Context, text string, v analysis.RawVerdict) (string, bool) {
	if s.advisor == nil {
		return domain.AdviceUnavailable, false
	}
	advice, err := s.advisor.Insight(ctx, text, v.Status, v.Keywords)
	if err != nil {
		log.Printf("advisor error status=%s: %v", v.Status, err)
		return domain.AdviceFallback, false
	}
	advice = strings.TrimSpace(advice)
	return advice, domain.FlagsDanger(advice)
}
