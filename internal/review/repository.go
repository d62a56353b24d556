package review

import (
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/golang-cafe/company-directory/internal/apperror"
	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
	"github.com/golang-cafe/company-directory/internal/stats"
)

const storageKey = "company_reviews"

const (
	MinRating = 1
	MaxRating = 5
)

// Ledger is the append-only review collection, most recent first.
type Ledger struct {
	codec     *blob.Codec
	directory *company.Directory
}

func NewLedger(codec *blob.Codec, directory *company.Directory) *Ledger {
	return &Ledger{codec: codec, directory: directory}
}

func (l *Ledger) load() []Review {
	reviews := []Review{}
	l.codec.Load(storageKey, &reviews)
	return reviews
}

// Add assigns an id and timestamp, prepends the review to the ledger and
// recomputes the company's review aggregate from the full ledger. A review
// for a company with no directory record is kept and the aggregate update
// is skipped.
func (l *Ledger) Add(companyName string, rating int, body string) (Review, error) {
	if rating < MinRating || rating > MaxRating {
		return Review{}, apperror.Validation("rating", "rating must be between 1 and 5")
	}
	id, err := ksuid.NewRandom()
	if err != nil {
		return Review{}, errors.Wrap(err, "unable to generate review id")
	}
	r := Review{
		ID:          id.String(),
		CompanyName: companyName,
		Rating:      rating,
		Body:        bluemonday.StrictPolicy().Sanitize(body),
		CreatedAt:   time.Now().UTC(),
	}
	reviews := append([]Review{r}, l.load()...)
	l.codec.Save(storageKey, reviews)

	total, avg := aggregate(reviews, companyName)
	l.directory.Merge(companyName, func(c *company.Company) {
		c.Stats.TotalReviews = total
		c.Stats.AverageRating = avg
		c.ReviewIDs = append(c.ReviewIDs, r.ID)
	})
	return r, nil
}

// ListFor returns the company's reviews preserving ledger order, most
// recent first.
func (l *Ledger) ListFor(companyName string) []Review {
	out := []Review{}
	for _, r := range l.load() {
		if r.CompanyName == companyName {
			out = append(out, r)
		}
	}
	return out
}

// aggregate recomputes the review aggregate from the full ledger filtered
// by company. The rating average is rounded to one decimal place, halves
// away from zero.
func aggregate(reviews []Review, companyName string) (int, float64) {
	ratings := []float64{}
	for _, r := range reviews {
		if r.CompanyName == companyName {
			ratings = append(ratings, float64(r.Rating))
		}
	}
	return len(ratings), stats.Round1(stats.Mean(ratings))
}
