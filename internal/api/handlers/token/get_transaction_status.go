package token

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/types"
	"github/chapool/humtoken/internal/util"
)

func GetTransactionStatusRoute(s *api.Server) *echo.Route {
	return s.Router.APIToken.GET("/transactions/:hash", getTransactionStatusHandler(s))
}

func getTransactionStatusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var params types.GetTransactionStatusRouteParams
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		status, err := s.Transfer.Status(ctx, params.Hash)
		if err != nil {
			return mapTokenError(s, err)
		}

		response := &types.GetTransactionStatusResponse{
			TransactionHash: swag.String(status.TransactionHash),
			Status:          swag.String(string(status.State)),
			BlockNumber:     int64(status.BlockNumber), //nolint:gosec // block numbers fit
			RevertReason:    status.RevertReason,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
