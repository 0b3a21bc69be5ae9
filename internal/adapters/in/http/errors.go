package http

import (
	"errors"
	"net/http"

	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/adapters/in/manifest"
	"parcelrouting/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatusOf maps the error taxonomy onto HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrReferenceIsUnresolvable),
		errors.Is(err, errs.ErrStatusTransitionIsInvalid):
		return http.StatusUnprocessableEntity
	case errs.IsInvalidArgument(err),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, manifest.ErrManifestIsMalformed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an api.Error. Internal errors are logged and their
// details are not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := StatusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, api.Error{Code: code, Message: message})
}

// errorHandler renders echo's own errors (routing, binding, validation
// middleware) with the same body as handler errors.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled error", zap.String("path", ctx.Path()), zap.Error(err))
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, api.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
