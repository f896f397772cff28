package validators

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const (
	// TagLogLevel accepts any level zerolog can parse, case-insensitive.
	TagLogLevel = "loglevel"
	// TagHTTPURL accepts absolute http(s) URLs with a host.
	TagHTTPURL = "httpurl"
)

// New creates a validator with the configuration tags registered.
func New() *Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagLogLevel, isLogLevel)
	_ = v.RegisterValidation(TagHTTPURL, isHTTPURL)
	return v
}

func isLogLevel(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	_, err := zerolog.ParseLevel(strings.ToLower(value))
	return err == nil
}

func isHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
