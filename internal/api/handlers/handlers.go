package handlers

import (
	"github.com/labstack/echo/v4"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/api/handlers/common"
	"github/chapool/humtoken/internal/api/handlers/token"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		token.GetAllowanceRoute(s),
		token.GetBalanceRoute(s),
		token.GetInfoRoute(s),
		token.GetTransactionStatusRoute(s),
		token.PostTransferRoute(s),
	}
}
