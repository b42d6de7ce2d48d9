package http

import (
	"context"
	"errors"
	"net/http"

	"taskparse/internal/command"
	pkgErrors "taskparse/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, command.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, command.ErrEmptyText.Error())
	case errors.Is(err, command.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, command.ErrTextTooLong.Error())
	case errors.Is(err, command.ErrEmptyBatch):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, command.ErrEmptyBatch.Error())
	case errors.Is(err, command.ErrBatchTooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, command.ErrBatchTooLarge.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, command.ErrProcessingFailed.Error())
	}
}

// logError maps err and logs it: Warn for 4xx results, Error otherwise.
func (h *handler) logError(ctx context.Context, op string, err error) error {
	mapped := h.mapError(err)

	var httpErr *pkgErrors.HTTPError
	if errors.As(mapped, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		h.l.Warnf(ctx, "%s: %v", op, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
	return mapped
}
