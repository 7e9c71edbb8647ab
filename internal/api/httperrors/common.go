package httperrors

import (
	"net/http"

	"github/chapool/humtoken/internal/types"
)

var (
	ErrBadRequestInvalidTransactionHash = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDTRANSACTIONHASH, "Transaction hash must be 0x followed by 64 hex characters.")
)
