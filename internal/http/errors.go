package http

import (
	"dns-query-collector/internal/shared/svcerrors"
)

const (
	codeInvalidBody        = "COL_1000"
	codeInvalidKey         = "COL_1001"
	codeCollectorNotFound  = "COL_1002"
	codeSubmissionNotFound = "COL_1003"
	codeUnsupportedMedia   = "COL_1004"
	codeStoreSubmission    = "COL_9000"
	codeLoadSubmission     = "COL_9001"
)

func errInvalidBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBody, "body must be a JSON array of objects", cause)
}

func errInvalidKey() *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeInvalidKey, "invalid collector key", nil)
}

func errCollectorNotFound(collectorID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCollectorNotFound, "collector "+collectorID+" not found", nil)
}

func errSubmissionNotFound(submissionID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSubmissionNotFound, "submission "+submissionID+" not found", nil)
}

func errUnsupportedMedia(mediaType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedMedia, "unsupported content type "+mediaType, nil)
}

func errStoreSubmission(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeStoreSubmission, cause)
}

func errLoadSubmission(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeLoadSubmission, cause)
}
