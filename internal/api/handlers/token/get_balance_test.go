package token_test

import (
	"math/big"
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/api/httperrors"
	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/types"
)

func TestGetBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		balance, _ := new(big.Int).SetString("1500000000000000000000", 10)
		test.MockChain(t, s).SetBalance(common.HexToAddress(test.Account0), balance)

		res := test.PerformRequest(t, s, "GET", "/api/token/balance/"+strings.ToLower(test.Account0), nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetBalanceResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, test.Account0, *response.Address)
		assert.Equal(t, "1500000000000000000000", *response.Balance)
		assert.Equal(t, "1500", *response.BalanceFormatted)
	})
}

func TestGetBalanceUnknownAddressIsZero(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/token/balance/"+test.Account1, nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetBalanceResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "0", *response.Balance)
		assert.Equal(t, "0", *response.BalanceFormatted)
	})
}

func TestGetBalanceInvalidAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/token/balance/0x1234", nil, nil)

		response := test.RequireHTTPError(t, res, httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS, "Invalid address"))
		assert.Equal(t, "length", response.Meta["reason"])
		assert.Zero(t, test.MockChain(t, s).Calls("balanceOf"))
	})
}
