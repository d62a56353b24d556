package blob

import (
	"encoding/json"
	"fmt"

	raven "github.com/getsentry/raven-go"
	"github.com/rs/zerolog"

	"github.com/golang-cafe/company-directory/internal/apperror"
	"github.com/golang-cafe/company-directory/internal/storage"
)

// Codec persists each collection as a single JSON value under one storage
// key. It is the only place storage failures are handled: reads degrade to
// the zero value of the collection when the key is absent or the payload
// does not parse, writes are logged and reported to sentry but never
// propagated. There is no backend to reconcile from, so a read or write
// failure must not take the rest of the directory down with it.
type Codec struct {
	store storage.Store
	log   zerolog.Logger
}

func NewCodec(store storage.Store, log zerolog.Logger) *Codec {
	return &Codec{store: store, log: log}
}

// Load unmarshals the collection stored under key into v. It returns false
// and leaves v untouched when the key is absent, unreadable or malformed.
func (c *Codec) Load(key string, v interface{}) bool {
	raw, err := c.store.Get(key)
	if err == storage.ErrKeyNotFound {
		return false
	}
	if err != nil {
		c.report(apperror.Storage(err, fmt.Sprintf("unable to read %s", key)), key)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		c.report(apperror.Storage(err, fmt.Sprintf("unable to parse %s", key)), key)
		return false
	}
	return true
}

// Save marshals v and writes it under key, swallowing failures.
func (c *Codec) Save(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.report(apperror.Storage(err, fmt.Sprintf("unable to marshal %s", key)), key)
		return
	}
	if err := c.store.Set(key, string(raw)); err != nil {
		c.report(apperror.Storage(err, fmt.Sprintf("unable to write %s", key)), key)
	}
}

func (c *Codec) report(err *apperror.Error, key string) {
	c.log.Error().Err(err).Str("key", key).Msg("storage")
	raven.CaptureError(err, map[string]string{"key": key})
}
