package memstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golang-cafe/company-directory/internal/storage"
)

func TestSetGetRoundtrip(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	require.NoError(t, store.Set("k", "v"))
	got, err := store.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", got)
}

func TestGetMissingKey(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	_, err = store.Get("missing")
	require.Equal(t, storage.ErrKeyNotFound, err)
}

func TestSetOverwrites(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	require.NoError(t, store.Set("k", "first"))
	require.NoError(t, store.Set("k", "second"))

	got, err := store.Get("k")
	require.NoError(t, err)
	require.Equal(t, "second", got)
}
