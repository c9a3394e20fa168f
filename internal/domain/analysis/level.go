package analysis

// Valid reports whether l is one of the three known levels.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskSafe, RiskSuspicious, RiskDanger:
		return true
	}
	return false
}

// Rank orders levels for display emphasis only.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskDanger:
		return 2
	case RiskSuspicious:
		return 1
	default:
		return 0
	}
}

// Label is the human title of the level.
func (l RiskLevel) Label() string {
	switch l {
	case RiskDanger:
		return "High Risk"
	case RiskSuspicious:
		return "Suspicious"
	default:
		return "Safe"
	}
}

func (l RiskLevel) Description() string {
	switch l {
	case RiskDanger:
		return "This message is likely a scam or phishing attempt"
	case RiskSuspicious:
		return "This message contains some red flags"
	default:
		return "This message appears to be legitimate"
	}
}

// Actions returns the recommended next steps for the level. The slice is a
// fresh copy on every call.
func (l RiskLevel) Actions() []string {
	switch l {
	case RiskDanger:
		return []string{"Do not respond", "Block sender", "Report as phishing"}
	case RiskSuspicious:
		return []string{"Verify sender identity", "Do not click links", "Contact organization directly"}
	default:
		return []string{"No action needed", "Message appears safe"}
	}
}
