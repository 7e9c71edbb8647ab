package token

import (
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/api/httperrors"
	"github/chapool/humtoken/internal/token"
)

// mapTokenError records failed contract reads and maps err for the response.
func mapTokenError(s *api.Server, err error) error {
	var readErr *token.ReadError
	if errors.As(err, &readErr) {
		s.Metrics.ObserveReadError(readErr.Field)
	}

	if httpErr, ok := httperrors.FromTokenError(err); ok {
		return httpErr
	}

	return err
}
