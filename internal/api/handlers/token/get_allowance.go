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

func GetAllowanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIToken.GET("/allowance/:owner/:spender", getAllowanceHandler(s))
}

func getAllowanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var params types.GetAllowanceRouteParams
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		allowance, err := s.Info.Allowance(ctx, params.Owner, params.Spender)
		if err != nil {
			return mapTokenError(s, err)
		}

		response := &types.GetAllowanceResponse{
			Owner:              swag.String(allowance.Owner.Hex()),
			Spender:            swag.String(allowance.Spender.Hex()),
			Allowance:          swag.String(allowance.Amount.String()),
			AllowanceFormatted: swag.String(amount.ToDecimalString(allowance.Amount, s.Config.Chain.Decimals)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
