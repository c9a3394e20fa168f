package verdict

import (
	"strings"

	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

const (
	ScoreLowRisk  = 45
	ScoreSafe     = 10
	ScoreEscalate = 85

	// ContextScamKeyword is reported when the advisor alone flags the message.
	ContextScamKeyword = "AI Detected Context Scam"

	AdviceUnavailable = "AI Insight unavailable."
	AdviceFallback    = "Standard analysis applies."
)

// Preliminary computes the keyword-only verdict before the advisor is asked.
func Preliminary(text string) analysis.RawVerdict {
	found := FindKeywords(text)
	if len(found) > 0 {
		return analysis.RawVerdict{Status: analysis.StatusLowRisk, Score: ScoreLowRisk, Keywords: found}
	}
	return analysis.RawVerdict{Status: analysis.StatusSafe, Score: ScoreSafe, Keywords: found}
}

// FlagsDanger reports whether advisor wording marks the message as a scam.
func FlagsDanger(advice string) bool {
	lower := strings.ToLower(advice)
	return strings.Contains(lower, "dangerous") || strings.Contains(lower, "scam")
}

// Escalate raises a Safe verdict to High Risk when the advisor flagged danger.
// Keyword hits keep their Low Risk verdict whatever the advisor says.
func Escalate(v analysis.RawVerdict, dangerous bool) analysis.RawVerdict {
	if !dangerous || v.Status != analysis.StatusSafe {
		return v
	}
	v.Status = analysis.StatusHighRisk
	v.Score = ScoreEscalate
	if len(v.Keywords) == 0 {
		v.Keywords = []string{ContextScamKeyword}
	}
	return v
}
