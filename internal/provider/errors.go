package provider

import "errors"

var (
	// ErrMissingAPIKey indicates the adapter has no credential configured.
	// Raised before any network call is attempted.
	ErrMissingAPIKey = errors.New("provider api key not configured")

	// ErrUnavailable indicates the provider endpoint could not be reached.
	ErrUnavailable = errors.New("provider unreachable")

	// ErrTimeout indicates the call exceeded the configured timeout.
	ErrTimeout = errors.New("provider request timed out")

	// ErrInvalidOutput indicates the provider responded, but the body could
	// not be parsed into a valid rankings document.
	ErrInvalidOutput = errors.New("invalid provider output")
)

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "NO_CREDENTIALS"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
