package response

import (
	"errors"
	"net/http"

	"enbminer/entity"
)

// HttpStatus maps the domain error taxonomy to conventional status codes:
// not-found 404, throttling 429, any other domain-rule violation 400, and
// everything else (store or network failure) 500.
func HttpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, entity.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, entity.ErrAccountExists),
		errors.Is(err, entity.ErrAlreadyActivated),
		errors.Is(err, entity.ErrInvalidCode),
		errors.Is(err, entity.ErrInviterNotActivated),
		errors.Is(err, entity.ErrUsageLimitExceeded),
		errors.Is(err, entity.ErrDuplicateUsage),
		errors.Is(err, entity.ErrAlreadyClaimedToday),
		errors.Is(err, entity.ErrInsufficientBalance),
		errors.Is(err, entity.ErrNotActivated),
		errors.Is(err, entity.ErrInvalidFilter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message hides internal failure details behind a generic message while
// passing domain-rule text through to the caller.
func Message(err error) string {
	if HttpStatus(err) == http.StatusInternalServerError {
		return "Internal error"
	}
	return err.Error()
}
