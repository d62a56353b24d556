package job

// Posting is the slice of a job or event post the directory backfill needs.
// The posting pipeline hands these over already validated; this subsystem
// never writes postings back.
type Posting struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	SalaryMin   int64  `json:"salaryMin"`
	SalaryMax   int64  `json:"salaryMax"`
	IsEvent     bool   `json:"isEvent"`
}
