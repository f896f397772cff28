package ingestors

import (
	"fmt"

	"dns-query-collector/internal/shared/svcerrors"
)

const (
	codeOpenFailed = "ING_9000"
	codeReadFailed = "ING_9001"
)

// errOpenFailed returns an error for a log file that cannot be opened.
func errOpenFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeOpenFailed, fmt.Errorf("open %s: %w", path, cause))
}

// errReadFailed returns an error for an input that broke while being read.
func errReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeReadFailed, fmt.Errorf("read: %w", cause))
}
