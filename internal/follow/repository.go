package follow

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
)

const storageKey = "followed_companies"

// Index keeps each user's follow set and materializes the distinct-user
// follow count on the company record after every change.
type Index struct {
	codec     *blob.Codec
	directory *company.Directory
}

func NewIndex(codec *blob.Codec, directory *company.Directory) *Index {
	return &Index{codec: codec, directory: directory}
}

func (i *Index) load() map[string][]Follow {
	follows := map[string][]Follow{}
	i.codec.Load(storageKey, &follows)
	return follows
}

// Follow adds company to the user's follow set. No-op when the pair
// already exists.
func (i *Index) Follow(companyName, userID string) {
	follows := i.load()
	for _, f := range follows[userID] {
		if f.CompanyName == companyName {
			return
		}
	}
	follows[userID] = append(follows[userID], Follow{
		CompanyName: companyName,
		FollowedAt:  time.Now().UTC(),
	})
	i.codec.Save(storageKey, follows)
	i.syncCount(follows, companyName)
}

// Unfollow removes the pair when present, no-op otherwise.
func (i *Index) Unfollow(companyName, userID string) {
	follows := i.load()
	current := follows[userID]
	next := make([]Follow, 0, len(current))
	removed := false
	for _, f := range current {
		if f.CompanyName == companyName {
			removed = true
			continue
		}
		next = append(next, f)
	}
	if !removed {
		return
	}
	if len(next) == 0 {
		delete(follows, userID)
	} else {
		follows[userID] = next
	}
	i.codec.Save(storageKey, follows)
	i.syncCount(follows, companyName)
}

func (i *Index) IsFollowed(companyName, userID string) bool {
	for _, f := range i.load()[userID] {
		if f.CompanyName == companyName {
			return true
		}
	}
	return false
}

// ListFor returns the user's follows in stable storage order. Callers sort
// as needed.
func (i *Index) ListFor(userID string) []Entry {
	follows := i.load()[userID]
	out := make([]Entry, 0, len(follows))
	for _, f := range follows {
		out = append(out, Entry{
			CompanyName: f.CompanyName,
			FollowedAt:  f.FollowedAt,
			TimeAgo:     humanize.Time(f.FollowedAt),
		})
	}
	return out
}

// syncCount recomputes the follow count for companyName from the full
// relation, counting distinct users whose set contains the company.
func (i *Index) syncCount(follows map[string][]Follow, companyName string) {
	count := 0
	for _, fs := range follows {
		for _, f := range fs {
			if f.CompanyName == companyName {
				count++
				break
			}
		}
	}
	i.directory.Merge(companyName, func(c *company.Company) {
		c.Stats.FollowCount = count
	})
}
