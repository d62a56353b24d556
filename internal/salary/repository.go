package salary

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/golang-cafe/company-directory/internal/apperror"
	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
	"github.com/golang-cafe/company-directory/internal/stats"
)

const storageKey = "salary_reports"

// Reported amounts outside these bounds are rejected at insert time, both
// bounds inclusive.
const (
	MinAmount = 15000
	MaxAmount = 500000
)

// Ledger is the append-only salary report collection, insertion order.
type Ledger struct {
	codec     *blob.Codec
	directory *company.Directory
}

func NewLedger(codec *blob.Codec, directory *company.Directory) *Ledger {
	return &Ledger{codec: codec, directory: directory}
}

func (l *Ledger) load() []Report {
	reports := []Report{}
	l.codec.Load(storageKey, &reports)
	return reports
}

// Report validates amount, appends the report and recomputes the company's
// reported salary average from the full ledger. Validation failures are
// returned to the caller, never swallowed.
func (l *Ledger) Report(companyName string, amount int, position string) (Report, error) {
	if amount < MinAmount || amount > MaxAmount {
		return Report{}, apperror.Validation("salaryAmount",
			fmt.Sprintf("salary amount must be between %d and %d", MinAmount, MaxAmount))
	}
	id, err := ksuid.NewRandom()
	if err != nil {
		return Report{}, errors.Wrap(err, "unable to generate report id")
	}
	rep := Report{
		ID:          id.String(),
		CompanyName: companyName,
		Amount:      amount,
		Position:    position,
		ReportedAt:  time.Now().UTC(),
	}
	reports := append(l.load(), rep)
	l.codec.Save(storageKey, reports)

	avg := average(reports, companyName)
	l.directory.Merge(companyName, func(c *company.Company) {
		c.Stats.AverageReportedSalary = avg
	})
	return rep, nil
}

// ListFor returns the company's reports in insertion order.
func (l *Ledger) ListFor(companyName string) []Report {
	out := []Report{}
	for _, r := range l.load() {
		if r.CompanyName == companyName {
			out = append(out, r)
		}
	}
	return out
}

// AverageFor returns the rounded mean of the company's reported amounts, 0
// when no reports exist.
func (l *Ledger) AverageFor(companyName string) int {
	return average(l.load(), companyName)
}

func average(reports []Report, companyName string) int {
	amounts := []float64{}
	for _, r := range reports {
		if r.CompanyName == companyName {
			amounts = append(amounts, float64(r.Amount))
		}
	}
	return stats.RoundMean(amounts)
}
