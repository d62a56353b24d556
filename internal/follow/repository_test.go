package follow

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
	"github.com/golang-cafe/company-directory/internal/storage/memstore"
)

func newTestIndex(t *testing.T) (*Index, *company.Directory) {
	t.Helper()
	store, err := memstore.New()
	require.NoError(t, err)
	codec := blob.NewCodec(store, zerolog.Nop())
	directory := company.NewDirectory(codec)
	return NewIndex(codec, directory), directory
}

func followCount(t *testing.T, directory *company.Directory, name string) int {
	t.Helper()
	c, ok := directory.Get(name)
	require.True(t, ok)
	return c.Stats.FollowCount
}

func TestFollowIsIdempotent(t *testing.T) {
	index, directory := newTestIndex(t)
	directory.Upsert("Acme", company.Update{})

	index.Follow("Acme", "user-1")
	index.Follow("Acme", "user-1")

	require.Len(t, index.ListFor("user-1"), 1)
	require.Equal(t, 1, followCount(t, directory, "Acme"))
}

func TestUnfollowIsIdempotent(t *testing.T) {
	index, directory := newTestIndex(t)
	directory.Upsert("Acme", company.Update{})

	index.Follow("Acme", "user-1")
	index.Unfollow("Acme", "user-1")
	index.Unfollow("Acme", "user-1")

	require.Empty(t, index.ListFor("user-1"))
	require.Equal(t, 0, followCount(t, directory, "Acme"))
}

func TestFollowCountScenario(t *testing.T) {
	index, directory := newTestIndex(t)
	directory.Upsert("Acme", company.Update{})

	index.Follow("Acme", "user-1")
	index.Follow("Acme", "user-2")
	index.Follow("Acme", "user-3")
	require.Equal(t, 3, followCount(t, directory, "Acme"))

	index.Unfollow("Acme", "user-2")
	require.Equal(t, 2, followCount(t, directory, "Acme"))

	index.Follow("Acme", "user-2")
	require.Equal(t, 3, followCount(t, directory, "Acme"))
	require.Len(t, index.ListFor("user-2"), 1)
}

func TestIsFollowed(t *testing.T) {
	index, directory := newTestIndex(t)
	directory.Upsert("Acme", company.Update{})

	require.False(t, index.IsFollowed("Acme", "user-1"))
	index.Follow("Acme", "user-1")
	require.True(t, index.IsFollowed("Acme", "user-1"))
	require.False(t, index.IsFollowed("Acme", "user-2"))
}

func TestListForSnapshots(t *testing.T) {
	index, directory := newTestIndex(t)
	directory.Upsert("Acme", company.Update{})
	directory.Upsert("Initech", company.Update{})

	index.Follow("Acme", "user-1")
	index.Follow("Initech", "user-1")

	entries := index.ListFor("user-1")
	require.Len(t, entries, 2)
	require.Equal(t, "Acme", entries[0].CompanyName)
	require.Equal(t, "Initech", entries[1].CompanyName)
	require.False(t, entries[0].FollowedAt.IsZero())
	require.NotEmpty(t, entries[0].TimeAgo)
}

func TestFollowUnknownCompanyKeepsRelation(t *testing.T) {
	index, directory := newTestIndex(t)

	index.Follow("Ghost Corp", "user-1")
	require.True(t, index.IsFollowed("Ghost Corp", "user-1"))

	_, ok := directory.Get("Ghost Corp")
	require.False(t, ok)
}
