package review

import (
	"time"
)

// Review is immutable once written. CompanyName is a weak reference: the
// ledger keeps reviews whose company record is missing.
type Review struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Rating      int       `json:"rating"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}
