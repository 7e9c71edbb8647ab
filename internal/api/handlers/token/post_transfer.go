package token

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/metrics"
	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/types"
	"github/chapool/humtoken/internal/util"
)

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.APIToken.POST("/transfer", postTransferHandler(s))
}

// postTransferHandler blocks until the transfer is confirmed or the
// confirmation wait elapses. A timeout is answered with 202 and the
// transaction hash since the transfer may still confirm.
func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostTransferPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Transfer.Transfer(ctx, body.TransferRequest())
		if err != nil {
			outcome := transferOutcome(err)
			s.Metrics.ObserveTransfer(outcome)
			log.Info().Err(err).Str("outcome", outcome).Msg("Transfer failed")
			return mapTokenError(s, err)
		}

		s.Metrics.ObserveTransfer(metrics.TransferConfirmed)

		response := &types.PostTransferResponse{
			Success:         swag.Bool(true),
			Confirmed:       swag.Bool(result.Confirmed),
			TransactionHash: swag.String(result.TransactionHash),
			From:            swag.String(result.From.Hex()),
			To:              swag.String(result.To.Hex()),
			Amount:          swag.String(result.Amount),
			BlockNumber:     int64(result.BlockNumber), //nolint:gosec // block numbers fit
			Message:         "Transfer completed successfully!",
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

func transferOutcome(err error) string {
	var submissionErr *token.SubmissionError
	if errors.As(err, &submissionErr) {
		switch submissionErr.Kind {
		case token.SubmissionTimeout:
			return metrics.TransferTimeout
		case token.SubmissionReverted:
			return metrics.TransferReverted
		case token.SubmissionNetwork:
			return metrics.TransferNetwork
		}
	}

	if errors.Is(err, token.ErrRead) {
		return metrics.TransferReadError
	}

	return metrics.TransferRejected
}
