package http

import (
	"errors"
	"net/http"

	"personal-task-management/internal/project"
	pkgErrors "personal-task-management/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errWrongQuery        = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errMissingID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errMissingName       = pkgErrors.NewHTTPError(http.StatusBadRequest, "name is required")
	errNameTooLong       = pkgErrors.NewHTTPError(http.StatusBadRequest, "name is too long")
	errInvalidColor      = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown color")
	errMissingPrompt     = pkgErrors.NewHTTPError(http.StatusBadRequest, "prompt is required")
	errUnsupportedAction = pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, "unsupported action")
	errProjectNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	errNothingGenerated  = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "no tasks generated")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrEmptyName):
		return errMissingName
	case errors.Is(err, project.ErrNameTooLong):
		return errNameTooLong
	case errors.Is(err, project.ErrInvalidColor):
		return errInvalidColor
	case errors.Is(err, project.ErrMissingID):
		return errMissingID
	case errors.Is(err, project.ErrProjectNotFound):
		return errProjectNotFound
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return pkgErrors.ErrInternalServerError
}
