package apierr

import (
	"fmt"
	"net/http"

	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
)

// StatusClientClosedRequest is returned when the caller went away mid-request.
const StatusClientClosedRequest = 499

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError classifies a pipeline error into a transport status. Only the
// transport boundary calls this.
func FromError(err error) *Error {
	var ae *Error
	switch {
	case err == nil:
		return nil
	case apperrors.As(err, &ae):
		return ae
	case apperrors.Is(err, apperrors.ErrCancelled):
		return New(StatusClientClosedRequest, "cancelled", err)
	case apperrors.Is(err, apperrors.ErrInvalidArgument):
		return New(http.StatusBadRequest, "invalid_argument", err)
	case apperrors.Is(err, apperrors.ErrNotFound):
		return New(http.StatusNotFound, "not_found", err)
	default:
		return New(http.StatusInternalServerError, "internal", err)
	}
}
