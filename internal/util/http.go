package util

import (
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/api/httperrors"
	"github/chapool/humtoken/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("unsupported echo binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Request body is not valid JSON")
	}

	return validatePayload(c, v)
}

// BindAndValidatePathParams binds the route parameters to v and validates them.
func BindAndValidatePathParams(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("unsupported echo binder")
	}

	if err := binder.BindPathParams(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates v against its schema before sending it.
// A response failing validation is a server bug and yields a 500.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response failed schema validation")
		return echo.ErrInternalServerError
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromEchoContext(c).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema, returning HTTP validation error")

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), formatValidationErrors(compositeError))
		}

		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
		return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest))
	}

	return nil
}

func formatValidationErrors(err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))

	for _, e := range err.Errors {
		var validationError *oerrors.Validation
		var compositeError *oerrors.CompositeError

		switch {
		case errors.As(e, &compositeError):
			valErrs = append(valErrs, formatValidationErrors(compositeError)...)
		case errors.As(e, &validationError):
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String(validationError.Name),
				In:    swag.String(validationError.In),
				Error: swag.String(validationError.Error()),
			})
		default:
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String("unknown"),
				In:    swag.String("unknown"),
				Error: swag.String(e.Error()),
			})
		}
	}

	return valErrs
}
