package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/api/httperrors"
	"github/chapool/humtoken/internal/types"
	"github/chapool/humtoken/internal/util"
)

// HTTPErrorHandler renders every error returned by a handler as a
// types.PublicHTTPError. Errors of package token are mapped to their
// status codes, anything unknown becomes a 500 without details.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := util.LogFromEchoContext(c)

	var (
		code     int
		response interface{}

		httpErr       *httperrors.HTTPError
		validationErr *httperrors.HTTPValidationError
		echoErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		code = int(*validationErr.Code)
		response = validationErr
	case errors.As(err, &httpErr):
		code = int(*httpErr.Code)
		response = httpErr
	case errors.As(err, &echoErr):
		e := httperrors.NewFromEcho(echoErr)
		code = echoErr.Code
		response = e
	default:
		if mapped, ok := httperrors.FromTokenError(err); ok {
			code = int(*mapped.Code)
			response = mapped
			break
		}

		code = http.StatusInternalServerError
		response = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
	}

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("Request failed")
	} else {
		log.Debug().Err(err).Int("status", code).Msg("Request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, response)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}
