package sinks

import (
	"fmt"

	"dns-query-collector/internal/shared/svcerrors"
)

const (
	codeUnexpectedStatus = "SNK_1000"
	codeInvalidEndpoint  = "SNK_1001"
	codeTransportError   = "SNK_9000"
	codeMarshalError     = "SNK_9001"
)

// errUnexpectedStatus returns an error for a collector response outside the 2xx range.
func errUnexpectedStatus(status int) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnexpectedStatus, fmt.Sprintf("collector answered status %d", status), nil)
}

// errInvalidEndpoint returns an error for a base url that cannot be parsed.
func errInvalidEndpoint(baseURL string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidEndpoint, "invalid collector base url "+baseURL, cause)
}

// errTransport returns an error for a request that got no response (refused, reset, timed out).
func errTransport(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeTransportError, "collector unreachable", cause)
}

// errMarshal returns an error for a chunk that could not be encoded.
func errMarshal(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeMarshalError, cause)
}
