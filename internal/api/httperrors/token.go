package httperrors

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/types"
)

// FromTokenError maps the typed errors of package token to HTTP errors.
// ok is false for errors outside that taxonomy.
func FromTokenError(err error) (httpErr *HTTPError, ok bool) {
	var (
		addressErr    *token.InvalidAddressError
		amountErr     *token.InvalidAmountError
		balanceErr    *token.InsufficientBalanceError
		keyErr        *token.KeyMismatchError
		readErr       *token.ReadError
		submissionErr *token.SubmissionError
	)

	switch {
	case errors.As(err, &addressErr):
		httpErr = NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS, "Invalid address", addressErr.Error()).
			WithMeta("field", addressErr.Field).
			WithMeta("reason", string(addressErr.Reason))
		if addressErr.Hint != "" {
			httpErr.WithHint(addressErr.Hint)
		}

	case errors.As(err, &amountErr):
		httpErr = NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDAMOUNT, "Invalid amount", amountErr.Error()).
			WithMeta("reason", string(amountErr.Reason))

	case errors.As(err, &balanceErr):
		httpErr = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINSUFFICIENTBALANCE, "Insufficient balance").
			WithMeta("available", balanceErr.Available.String()).
			WithMeta("requested", balanceErr.Requested.String())

	case errors.As(err, &keyErr):
		title := "Private key does not match the from address"
		if keyErr.Malformed {
			title = "Invalid private key"
		}
		httpErr = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeKEYMISMATCH, title)

	case errors.As(err, &readErr):
		httpErr = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeCHAINREADFAILED, "Failed to read token contract").
			WithMeta("field", readErr.Field)

	case errors.As(err, &submissionErr):
		httpErr = fromSubmissionError(submissionErr)

	case errors.Is(err, token.ErrInvalidTransactionHash):
		httpErr = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDTRANSACTIONHASH, *ErrBadRequestInvalidTransactionHash.Title)

	default:
		return nil, false
	}

	httpErr.Internal = err
	return httpErr, true
}

func fromSubmissionError(err *token.SubmissionError) *HTTPError {
	var httpErr *HTTPError

	switch err.Kind {
	case token.SubmissionTimeout:
		httpErr = NewHTTPErrorWithDetail(http.StatusAccepted, types.PublicHTTPErrorTypeTRANSFERTIMEOUT,
			"Transfer broadcast but not confirmed in time", "Unknown outcome, check transaction hash before retrying.")
	case token.SubmissionReverted:
		httpErr = NewHTTPErrorWithDetail(http.StatusUnprocessableEntity, types.PublicHTTPErrorTypeTRANSFERREVERTED,
			"Transfer reverted", err.Reason)
		if err.Reason != "" {
			httpErr.WithMeta("reason", err.Reason)
		}
	case token.SubmissionNetwork:
		fallthrough
	default:
		httpErr = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeSUBMISSIONFAILED, "Transfer was not submitted")
	}

	httpErr.WithMeta("retryable", strconv.FormatBool(err.Retryable()))
	if err.TxHash != "" {
		httpErr.WithMeta("transactionHash", err.TxHash)
	}

	return httpErr
}
