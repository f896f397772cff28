package http

import (
	"encoding/json"
	"net/http"
	"time"

	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/shared/ulid"
	"dns-query-collector/internal/stores"
)

const maxSubmissionBytes = 32 << 20

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// SubmitQueriesResponse is the body of an accepted submission.
type SubmitQueriesResponse struct {
	SubmissionID string `json:"submissionId"`
	Accepted     int    `json:"accepted"`
}

type submitQueriesHandler struct {
	auth            collectorAuth
	submissionStore stores.SubmissionStore
}

func NewSubmitQueriesHandler(collectorID, key string, submissionStore stores.SubmissionStore) AppHttpHandler {
	return &submitQueriesHandler{
		auth:            collectorAuth{collectorID: collectorID, key: key},
		submissionStore: submissionStore,
	}
}

// Handle processes POST /collectors/{collectorID}/dns/queries?key=...
func (h *submitQueriesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.auth.check(r); err != nil {
		return err
	}
	if mt := mediaType(r); mt != "" && mt != "application/json" {
		return errUnsupportedMedia(mt)
	}

	var records []map[string]json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmissionBytes)).Decode(&records); err != nil {
		return errInvalidBody(err)
	}
	if records == nil {
		return errInvalidBody(nil)
	}
	for _, record := range records {
		if record == nil {
			return errInvalidBody(nil)
		}
	}

	receivedAt := time.Now().UTC()
	submission := &models.Submission{
		SubmissionID: ulid.NewULIDAt(receivedAt),
		CollectorID:  h.auth.collectorID,
		ReceivedAt:   receivedAt,
		Client:       clientFamily(r),
		Records:      records,
	}
	if err := h.submissionStore.Put(r.Context(), submission); err != nil {
		return errStoreSubmission(err)
	}
	metricRecordsAcceptedTotal.WithLabelValues(submission.Client).Add(float64(len(records)))

	loggers.Ctx(r.Context()).Info().
		Str(loggers.FieldCollectorID, submission.CollectorID).
		Str(loggers.FieldUserAgent, submission.Client).
		Int(loggers.FieldChunkSize, len(records)).
		Msg("Submission accepted")

	return writeJSON(w, http.StatusOK, &SubmitQueriesResponse{
		SubmissionID: submission.SubmissionID,
		Accepted:     len(records),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
