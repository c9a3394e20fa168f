package history

import (
	"time"

	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

// ScanType enum
type ScanType string

const (
	TypeText  ScanType = "text"
	TypeImage ScanType = "image"
)

// Valid reports whether t is a known scan type.
func (t ScanType) Valid() bool {
	return t == TypeText || t == TypeImage
}

// ScanRecord is one immutable entry in the history collection.
type ScanRecord struct {
	ID        string             `json:"id"`
	Text      string             `json:"text"`
	Date      time.Time          `json:"date"`
	RiskLevel analysis.RiskLevel `json:"riskLevel"`
	Score     int                `json:"score"`
	Type      ScanType           `json:"type"`
}

// Entry is what callers hand to Save; id and date are assigned by the store.
type Entry struct {
	Text      string
	RiskLevel analysis.RiskLevel
	Score     int
	Type      ScanType
}
