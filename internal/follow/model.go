package follow

import (
	"time"
)

// Follow records that a user follows a company. At most one entry exists
// per (user, company) pair.
type Follow struct {
	CompanyName string    `json:"companyName"`
	FollowedAt  time.Time `json:"followedAt"`
}

// Entry is the snapshot handed to view layers, with a humanized age.
type Entry struct {
	CompanyName string
	FollowedAt  time.Time
	TimeAgo     string
}
