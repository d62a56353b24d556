package company

import (
	"time"
)

// Statistics is the aggregate block embedded in every company record. Each
// derived field is recomputed in full from its source collection whenever
// that collection changes, so a missed update heals on the next write.
type Statistics struct {
	Hired                 int     `json:"hired"`
	Interviewed           int     `json:"interviewed"`
	Rejected              int     `json:"rejected"`
	TotalJobPosts         int     `json:"totalJobPosts"`
	TotalApplications     int     `json:"totalApplications"`
	AverageSalary         int     `json:"averageSalary"`
	AverageReportedSalary int     `json:"averageReportedSalary"`
	AverageRating         float64 `json:"averageRating"`
	TotalReviews          int     `json:"totalReviews"`
	FollowCount           int     `json:"followCount"`
}

type ProfileColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Company is keyed by its display name, exact and case sensitive. The slug
// is derived for URLs and display only, it is never a lookup key.
//
// IsBlocked mirrors membership of the blocklist set. The set is what
// filtering reads; the flag is advisory and the two can drift when the
// record is rewritten concurrently from another process.
type Company struct {
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Biography    string         `json:"biography"`
	Addresses    []string       `json:"addresses"`
	LogoImageID  string         `json:"logoImageId"`
	Website      string         `json:"website"`
	Industry     string         `json:"industry"`
	FoundedYear  string         `json:"foundedYear"`
	CompanySize  string         `json:"companySize"`
	Colors       *ProfileColors `json:"colors,omitempty"`
	Stats        Statistics     `json:"stats"`
	ReviewIDs    []string       `json:"reviewIds"`
	JobPostIDs   []string       `json:"jobPostIds"`
	EventPostIDs []string       `json:"eventPostIds"`
	IsBlocked    bool           `json:"isBlocked"`
	ReportCount  int            `json:"reportCount"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Update carries partial fields to merge onto a company record. An empty
// field leaves the existing value untouched; there is no way to clear a
// field through an update and that is deliberate.
type Update struct {
	Biography   string
	Addresses   []string
	LogoImageID string
	Website     string
	Industry    string
	FoundedYear string
	CompanySize string
	Colors      *ProfileColors
}
