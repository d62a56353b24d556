package salary

import (
	"time"
)

// Report is an anonymous salary report, append-only and immutable.
type Report struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Amount      int       `json:"amount"`
	Position    string    `json:"position,omitempty"`
	ReportedAt  time.Time `json:"reportedAt"`
}
