package http

import (
	"errors"
	"net/http"

	"personal-task-management/internal/task"
	pkgErrors "personal-task-management/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errMissingID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errMissingContent    = pkgErrors.NewHTTPError(http.StatusBadRequest, "content is required")
	errMissingCompleted  = pkgErrors.NewHTTPError(http.StatusBadRequest, "completed is required")
	errInvalidDueDate    = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be RFC 3339 or YYYY-MM-DD")
	errInvalidField      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid field value")
	errUnsupportedAction = pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, "unsupported action")
	errTaskNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
)

// mapError translates use-case errors into HTTP errors. Service failures
// become a bare 500; their cause was already logged by the use case.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyContent):
		return errMissingContent
	case errors.Is(err, task.ErrMissingID):
		return errMissingID
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return pkgErrors.ErrInternalServerError
}
