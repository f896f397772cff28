package http

import (
	"mime"
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerUserAgent   = "user-agent"

	queryParamKey = "key"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// mediaType returns the content type without parameters, e.g. "application/json".
func mediaType(r *http.Request) string {
	value := strings.TrimSpace(r.Header.Get(headerContentType))
	if value == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return value
	}
	return parsed
}

func collectorKey(r *http.Request) string {
	return r.URL.Query().Get(queryParamKey)
}

// clientFamily returns the user agent family of the submitter, or the raw header when it is not recognized.
func clientFamily(r *http.Request) string {
	ua := strings.TrimSpace(r.Header.Get(headerUserAgent))
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
