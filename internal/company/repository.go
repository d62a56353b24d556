package company

import (
	"fmt"
	"sort"
	"time"

	"github.com/gosimple/slug"

	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/job"
	"github.com/golang-cafe/company-directory/internal/stats"
)

const storageKey = "companies"

// Directory is the registry every other collection attaches aggregates to.
// The store has no partial update, so every mutation is a read-modify-write
// of the whole companies blob: two processes updating companies at the same
// time can lose one of the writes (last writer wins). That limitation is
// accepted rather than papered over, see DESIGN.md.
type Directory struct {
	codec *blob.Codec
}

func NewDirectory(codec *blob.Codec) *Directory {
	return &Directory{codec: codec}
}

func (d *Directory) load() map[string]Company {
	companies := map[string]Company{}
	d.codec.Load(storageKey, &companies)
	return companies
}

func (d *Directory) save(companies map[string]Company) {
	d.codec.Save(storageKey, companies)
}

// Get returns a snapshot of the record for name. It never fails: a storage
// or parse error reads as an empty directory.
func (d *Directory) Get(name string) (Company, bool) {
	companies := d.load()
	c, ok := companies[name]
	if !ok {
		return Company{}, false
	}
	applyDefaults(&c)
	return c, true
}

// All returns every company record sorted by name.
func (d *Directory) All() []Company {
	companies := d.load()
	out := make([]Company, 0, len(companies))
	for _, c := range companies {
		applyDefaults(&c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Upsert merges update onto the record for name, creating a fresh record
// when none exists. Per field the later non-empty value wins, else the
// existing value is kept.
func (d *Directory) Upsert(name string, update Update) Company {
	companies := d.load()
	c, ok := companies[name]
	if !ok {
		c = newCompany(name)
	}
	applyDefaults(&c)
	merge(&c, update)
	c.UpdatedAt = time.Now().UTC()
	companies[name] = c
	d.save(companies)
	return c
}

// Merge loads the record for name, applies mutate and writes the whole
// directory back. It returns false without writing when no record exists;
// the ledgers treat that as an accepted orphan, not an error. This is the
// shared recompute-and-merge entry point for every aggregate writer.
func (d *Directory) Merge(name string, mutate func(*Company)) bool {
	companies := d.load()
	c, ok := companies[name]
	if !ok {
		return false
	}
	applyDefaults(&c)
	mutate(&c)
	c.UpdatedAt = time.Now().UTC()
	companies[name] = c
	d.save(companies)
	return true
}

// SetBlocked mirrors the blocklist membership onto the record's advisory
// flag. No-op when the record does not exist.
func (d *Directory) SetBlocked(name string, blocked bool) bool {
	return d.Merge(name, func(c *Company) {
		c.IsBlocked = blocked
	})
}

// AddReport bumps the moderation report counter on the record.
func (d *Directory) AddReport(name string) bool {
	return d.Merge(name, func(c *Company) {
		c.ReportCount++
	})
}

// BulkBackfill derives a starter record for every company that appears in
// postings but has no directory entry yet. Existing records are never
// touched, so re-ingesting the same feed is a no-op. Returns the number of
// records created.
func (d *Directory) BulkBackfill(postings []job.Posting) int {
	companies := d.load()
	byCompany := map[string][]job.Posting{}
	order := []string{}
	for _, p := range postings {
		if _, seen := byCompany[p.CompanyName]; !seen {
			order = append(order, p.CompanyName)
		}
		byCompany[p.CompanyName] = append(byCompany[p.CompanyName], p)
	}
	created := 0
	for _, name := range order {
		if _, ok := companies[name]; ok {
			continue
		}
		companies[name] = starterCompany(name, byCompany[name])
		created++
	}
	if created > 0 {
		d.save(companies)
	}
	return created
}

// starterCompany seeds a record from the company's own postings: job and
// event postings are partitioned by the IsEvent flag and the salary average
// is the rounded mean of each job's (min+max)/2.
func starterCompany(name string, postings []job.Posting) Company {
	c := newCompany(name)
	c.Biography = fmt.Sprintf("%s has not written a company biography yet.", name)
	salaries := []float64{}
	seenLocations := map[string]bool{}
	for _, p := range postings {
		if p.Location != "" && !seenLocations[p.Location] {
			seenLocations[p.Location] = true
			c.Addresses = append(c.Addresses, p.Location)
		}
		if p.IsEvent {
			c.EventPostIDs = append(c.EventPostIDs, p.ID)
			continue
		}
		c.JobPostIDs = append(c.JobPostIDs, p.ID)
		salaries = append(salaries, float64(p.SalaryMin+p.SalaryMax)/2)
	}
	c.Stats.TotalJobPosts = len(c.JobPostIDs)
	c.Stats.AverageSalary = stats.RoundMean(salaries)
	return c
}

func newCompany(name string) Company {
	now := time.Now().UTC()
	return Company{
		Name:         name,
		Slug:         slug.Make(name),
		Addresses:    []string{},
		ReviewIDs:    []string{},
		JobPostIDs:   []string{},
		EventPostIDs: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// applyDefaults backfills zero values on records written by older schema
// versions so callers never see nil slices or an empty slug.
func applyDefaults(c *Company) {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	if c.Addresses == nil {
		c.Addresses = []string{}
	}
	if c.ReviewIDs == nil {
		c.ReviewIDs = []string{}
	}
	if c.JobPostIDs == nil {
		c.JobPostIDs = []string{}
	}
	if c.EventPostIDs == nil {
		c.EventPostIDs = []string{}
	}
}

func merge(c *Company, u Update) {
	if u.Biography != "" {
		c.Biography = u.Biography
	}
	if len(u.Addresses) > 0 {
		c.Addresses = u.Addresses
	}
	if u.LogoImageID != "" {
		c.LogoImageID = u.LogoImageID
	}
	if u.Website != "" {
		c.Website = u.Website
	}
	if u.Industry != "" {
		c.Industry = u.Industry
	}
	if u.FoundedYear != "" {
		c.FoundedYear = u.FoundedYear
	}
	if u.CompanySize != "" {
		c.CompanySize = u.CompanySize
	}
	if u.Colors != nil {
		colors := *u.Colors
		c.Colors = &colors
	}
}
