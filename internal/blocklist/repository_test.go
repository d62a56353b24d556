package blocklist

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
	"github.com/golang-cafe/company-directory/internal/storage/memstore"
)

func newTestList(t *testing.T) (*List, *company.Directory) {
	t.Helper()
	store, err := memstore.New()
	require.NoError(t, err)
	codec := blob.NewCodec(store, zerolog.Nop())
	directory := company.NewDirectory(codec)
	return NewList(codec, directory), directory
}

func TestBlockIsIdempotent(t *testing.T) {
	list, directory := newTestList(t)
	directory.Upsert("Acme", company.Update{})

	list.Block("Acme")
	list.Block("Acme")

	require.Equal(t, []string{"Acme"}, list.ListBlocked())
	require.True(t, list.IsBlocked("Acme"))

	c, _ := directory.Get("Acme")
	require.True(t, c.IsBlocked)
}

func TestRepeatedBlockReassertsDriftedFlag(t *testing.T) {
	list, directory := newTestList(t)
	directory.Upsert("Acme", company.Update{})
	list.Block("Acme")

	// flag drifted behind the set, e.g. the record was rewritten elsewhere
	directory.Merge("Acme", func(c *company.Company) { c.IsBlocked = false })

	list.Block("Acme")

	require.Equal(t, []string{"Acme"}, list.ListBlocked())
	c, _ := directory.Get("Acme")
	require.True(t, c.IsBlocked)
}

func TestUnblockClearsSetAndFlag(t *testing.T) {
	list, directory := newTestList(t)
	directory.Upsert("Acme", company.Update{})

	list.Block("Acme")
	list.Unblock("Acme")
	list.Unblock("Acme")

	require.Empty(t, list.ListBlocked())
	require.False(t, list.IsBlocked("Acme"))

	c, _ := directory.Get("Acme")
	require.False(t, c.IsBlocked)
}

func TestBlockUnknownCompanyUpdatesSetOnly(t *testing.T) {
	list, directory := newTestList(t)

	list.Block("Ghost Corp")
	require.True(t, list.IsBlocked("Ghost Corp"))

	_, ok := directory.Get("Ghost Corp")
	require.False(t, ok)
}

func TestIsBlockedUnknown(t *testing.T) {
	list, _ := newTestList(t)
	require.False(t, list.IsBlocked("Acme"))
}
