package token

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/amount"
	"github/chapool/humtoken/internal/types"
	"github/chapool/humtoken/internal/util"
)

func GetBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIToken.GET("/balance/:address", getBalanceHandler(s))
}

func getBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var params types.GetBalanceRouteParams
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		balance, err := s.Info.Balance(ctx, params.Address)
		if err != nil {
			return mapTokenError(s, err)
		}

		response := &types.GetBalanceResponse{
			Address:          swag.String(balance.Owner.Hex()),
			Balance:          swag.String(balance.Amount.String()),
			BalanceFormatted: swag.String(amount.ToDecimalString(balance.Amount, s.Config.Chain.Decimals)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
