package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dns-query-collector/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewUnauthorizedError("COL_1001", "invalid collector key", nil))
	assert.Equal(t, "COL_1001", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_TracksStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusUnauthorized)
	_, _ = appWriter.Write([]byte("denied"))

	assert.Equal(t, http.StatusUnauthorized, appWriter.Status())
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "denied", rr.Body.String())
}

func TestResponseOutcome(t *testing.T) {
	t.Parallel()

	t.Run("nothing written defaults to 200", func(t *testing.T) {
		status, code := responseOutcome(newAppResponseWriter(httptest.NewRecorder(), 1))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "", code)
	})

	t.Run("error response", func(t *testing.T) {
		appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
		appWriter.SetServiceError(svcerrors.NewNotFoundError("COL_1002", "collector x not found", nil))
		appWriter.WriteHeader(http.StatusNotFound)

		status, code := responseOutcome(appWriter)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "COL_1002", code)
	})

	t.Run("plain writer", func(t *testing.T) {
		status, code := responseOutcome(httptest.NewRecorder())
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "", code)
	})
}
