package analysis

// RiskLevel enum
type RiskLevel string

const (
	RiskSafe       RiskLevel = "safe"
	RiskSuspicious RiskLevel = "suspicious"
	RiskDanger     RiskLevel = "danger"
)

// Status labels with a defined meaning. Any other label maps to RiskSafe.
const (
	StatusHighRisk = "High Risk"
	StatusLowRisk  = "Low Risk"
	StatusSafe     = "Safe"
)

// RawVerdict is the classifier's response before normalization.
type RawVerdict struct {
	Status   string   `json:"status"`
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords"`
	Advice   string   `json:"advice"`
}

// Result is the stable shape shown to the user.
type Result struct {
	RiskLevel   RiskLevel `json:"riskLevel"`
	Score       int       `json:"score"`
	Highlights  []string  `json:"highlights"`
	Explanation []string  `json:"explanation"`
	Actions     []string  `json:"actions"`
}
