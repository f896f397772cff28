package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const urlParamCollectorID = "collectorID"

// collectorAuth checks the collector ID in the path and the key in the query string.
type collectorAuth struct {
	collectorID string
	key         string
}

func (a collectorAuth) check(r *http.Request) error {
	collectorID := chi.URLParam(r, urlParamCollectorID)
	if collectorID != a.collectorID {
		return errCollectorNotFound(collectorID)
	}
	if subtle.ConstantTimeCompare([]byte(collectorKey(r)), []byte(a.key)) != 1 {
		return errInvalidKey()
	}
	return nil
}
