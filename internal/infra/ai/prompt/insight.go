package prompt

import (
	"fmt"
	"strings"
)

// GetInsightPrompt asks the model to judge a message given the keyword verdict.
// The model is told to use the word DANGEROUS when it believes the message is a
// scam; callers look for that word.
func GetInsightPrompt(text, status string, keywords []string) string {
	return fmt.Sprintf(`Analyze this text: %q

Current Status: %s
Keywords: [%s]

Task:
1. Explain WHY it is safe or dangerous in 2 sentences.
2. If you strongly believe this IS a scam (even if status says Safe), include the word "DANGEROUS" in your response.`,
		text, status, strings.Join(keywords, ", "))
}
