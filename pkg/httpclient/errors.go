package httpclient

import "errors"

// Sentinel errors for the failure taxonomy. Callers classify with errors.Is.
var (
	ErrTimeout      = errors.New("request timeout, please try again")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
	ErrNotFound     = errors.New("resource not found")
	ErrServer       = errors.New("server error, please try again later")
)

// StatusError is the error returned for any non-2xx response. Message is the
// user-facing text (server-provided where the status allows it). It unwraps
// to one of the sentinels above for the statuses the panel treats specially.
type StatusError struct {
	Code    int
	Message string
	kind    error
}

func (e *StatusError) Error() string { return e.Message }

func (e *StatusError) Unwrap() error { return e.kind }

// classify maps a non-2xx status plus the parsed server message to the error
// surfaced to callers. 403/404/500 override the server text with the fixed
// panel wording.
func classify(code int, message string) error {
	switch code {
	case 401:
		if message == "" {
			message = ErrUnauthorized.Error()
		}
		return &StatusError{Code: code, Message: message, kind: ErrUnauthorized}
	case 403:
		return &StatusError{Code: code, Message: ErrForbidden.Error(), kind: ErrForbidden}
	case 404:
		return &StatusError{Code: code, Message: ErrNotFound.Error(), kind: ErrNotFound}
	case 500:
		return &StatusError{Code: code, Message: ErrServer.Error(), kind: ErrServer}
	default:
		if message == "" {
			message = "an error occurred"
		}
		return &StatusError{Code: code, Message: message}
	}
}
