package verdict

import "strings"

// Keywords is the fixed list of scam trigger phrases, checked in this order.
var Keywords = []string{
	"urgent", "winner", "congratulations", "won", "prize",
	"irs", "tax", "ssn", "social security", "parcel", "delivery",
	"appleid", "reset password", "verify", "suspended", "bvn", "nin",
	"bitcoin", "investment", "profit", "credit card", "bank",
	"click here", "link", "act now", "expires", "opt out",
}

// FindKeywords returns every trigger phrase contained in text, case-insensitively.
func FindKeywords(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 4)
	for _, k := range Keywords {
		if strings.Contains(lower, k) {
			found = append(found, k)
		}
	}
	return found
}
