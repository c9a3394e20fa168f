package analysis

import (
	"fmt"
	"strings"
)

// LevelFromStatus maps the classifier's free-form status label to a RiskLevel.
func LevelFromStatus(status string) RiskLevel {
	switch status {
	case StatusHighRisk:
		return RiskDanger
	case StatusLowRisk:
		return RiskSuspicious
	default:
		return RiskSafe
	}
}

// Normalize maps a raw verdict into a Result. Score is passed through without
// clamping; out of range values from the classifier stay visible.
func Normalize(v RawVerdict) Result {
	level := LevelFromStatus(v.Status)

	highlights := make([]string, len(v.Keywords))
	copy(highlights, v.Keywords)

	explanation := []string{v.Advice}
	if len(v.Keywords) > 0 {
		explanation = append(explanation, fmt.Sprintf(`Triggers found: "%s"`, strings.Join(v.Keywords, ", ")))
	}

	return Result{
		RiskLevel:   level,
		Score:       int(v.Score),
		Highlights:  highlights,
		Explanation: explanation,
		Actions:     level.Actions(),
	}
}
