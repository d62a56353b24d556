package blocklist

import (
	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
)

const storageKey = "blocked_companies"

// List is the process-wide set of blocked company names. Membership here is
// what filtering consults; the IsBlocked flag on the company record is a
// mirror kept for display and the two can drift when the record is written
// concurrently elsewhere. Both are updated together on every call.
type List struct {
	codec     *blob.Codec
	directory *company.Directory
}

func NewList(codec *blob.Codec, directory *company.Directory) *List {
	return &List{codec: codec, directory: directory}
}

func (l *List) load() []string {
	blocked := []string{}
	l.codec.Load(storageKey, &blocked)
	return blocked
}

// Block adds the company to the set and mirrors the flag onto the record.
// Idempotent on the set; the flag is written on every call, even when the
// set is unchanged, so a flag that drifted behind the set heals here.
func (l *List) Block(companyName string) {
	blocked := l.load()
	if !contains(blocked, companyName) {
		blocked = append(blocked, companyName)
		l.codec.Save(storageKey, blocked)
	}
	l.directory.SetBlocked(companyName, true)
}

// Unblock removes the company from the set and clears the flag. Idempotent
// on the set; like Block, the flag is cleared on every call.
func (l *List) Unblock(companyName string) {
	blocked := l.load()
	next := make([]string, 0, len(blocked))
	for _, name := range blocked {
		if name == companyName {
			continue
		}
		next = append(next, name)
	}
	if len(next) != len(blocked) {
		l.codec.Save(storageKey, next)
	}
	l.directory.SetBlocked(companyName, false)
}

func (l *List) IsBlocked(companyName string) bool {
	return contains(l.load(), companyName)
}

// ListBlocked returns the blocked set in stable storage order.
func (l *List) ListBlocked() []string {
	return l.load()
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
