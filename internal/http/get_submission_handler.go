package http

import (
	"errors"
	"net/http"

	"dns-query-collector/internal/stores"

	"github.com/go-chi/chi/v5"
)

const urlParamSubmissionID = "submissionID"

type getSubmissionHandler struct {
	auth            collectorAuth
	submissionStore stores.SubmissionStore
}

func NewGetSubmissionHandler(collectorID, key string, submissionStore stores.SubmissionStore) AppHttpHandler {
	return &getSubmissionHandler{
		auth:            collectorAuth{collectorID: collectorID, key: key},
		submissionStore: submissionStore,
	}
}

// Handle processes GET /collectors/{collectorID}/dns/queries/{submissionID}?key=...
func (h *getSubmissionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.auth.check(r); err != nil {
		return err
	}

	submissionID := chi.URLParam(r, urlParamSubmissionID)
	submission, err := h.submissionStore.Get(r.Context(), h.auth.collectorID, submissionID)
	if err != nil {
		if errors.Is(err, stores.ErrSubmissionNotFound) {
			return errSubmissionNotFound(submissionID)
		}
		return errLoadSubmission(err)
	}

	return writeJSON(w, http.StatusOK, submission)
}
