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

func GetInfoRoute(s *api.Server) *echo.Route {
	return s.Router.APIToken.GET("/info", getInfoHandler(s))
}

func getInfoHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		info, err := s.Info.FetchAll(ctx)
		if err != nil {
			return mapTokenError(s, err)
		}

		response := &types.GetTokenInfoResponse{
			Address:                swag.String(s.Chain.TokenAddress().Hex()),
			Name:                   swag.String(info.Name),
			Symbol:                 swag.String(info.Symbol),
			Decimals:               swag.String(swag.FormatUint8(info.Decimals)),
			TotalSupply:            swag.String(info.TotalSupply.String()),
			TotalSupplyFormatted:   swag.String(amount.ToDecimalString(info.TotalSupply, info.Decimals)),
			Treasury:               swag.String(info.Treasury.Hex()),
			FeeBasisPoints:         swag.String(info.FeeBasisPoints.String()),
			FeePercent:             swag.String(amount.FeePercent(info.FeeBasisPoints)),
			MaxWalletSize:          swag.String(info.MaxWalletSize.String()),
			MaxWalletSizeFormatted: swag.String(amount.ToDecimalString(info.MaxWalletSize, info.Decimals)),
			MaxTxAmount:            swag.String(info.MaxTxAmount.String()),
			MaxTxAmountFormatted:   swag.String(amount.ToDecimalString(info.MaxTxAmount, info.Decimals)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
