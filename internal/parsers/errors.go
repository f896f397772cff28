package parsers

import (
	"dns-query-collector/internal/shared/svcerrors"
)

const (
	codeFormatError    = "PRS_1000"
	codeTimestampError = "PRS_1001"
)

// Exported codes, for callers that classify parse failures.
const (
	CodeFormatError    = codeFormatError
	CodeTimestampError = codeTimestampError
)

// errFormat returns an error for a line that does not match the query log format.
func errFormat() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeFormatError, "bad format", nil)
}

// errTimestamp returns an error for a line whose date and time do not form a valid instant.
func errTimestamp(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTimestampError, "invalid timestamp "+value, cause)
}
