package http

import (
	"errors"
	"net/http"

	"multilanguage-agent/internal/conversation"
	pkgErrors "multilanguage-agent/pkg/errors"
)

var (
	errEmptyMessage   = pkgErrors.NewHTTPError(http.StatusBadRequest, conversation.ErrEmptyMessage.Error())
	errMissingSession = pkgErrors.NewHTTPError(http.StatusUnauthorized, conversation.ErrMissingSession.Error())
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, conversation.ErrMissingSession):
		return errMissingSession
	default:
		return pkgErrors.ErrInternalServerError
	}
}
