package prompt

import (
	"strings"
	"testing"
)

func TestGetInsightPrompt(t *testing.T) {
	p := GetInsightPrompt(`Pay "now"`, "Low Risk", []string{"bank", "urgent"})
	for _, want := range []string{`"Pay \"now\""`, "Current Status: Low Risk", "Keywords: [bank, urgent]", "DANGEROUS"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestGetExtractionPrompt(t *testing.T) {
	if !strings.Contains(GetExtractionPrompt(), "Output only the transcribed text") {
		t.Fatal("extraction prompt lost its output rule")
	}
}
