// Package router contains the route table of the API server.
package router

import (
	"cashless/internal/delivery/api/middleware"
	"cashless/internal/delivery/api/router/handler"
	"cashless/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	NfcHandler         *handler.NfcHandler
	IdentifyHandler    *handler.IdentifyHandler
	TransactionHandler *handler.TransactionHandler
	AccountHandler     *handler.AccountHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

type router struct {
	authHandler        *handler.AuthHandler
	nfcHandler         *handler.NfcHandler
	identifyHandler    *handler.IdentifyHandler
	transactionHandler *handler.TransactionHandler
	accountHandler     *handler.AccountHandler
	authMiddleware     *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		nfcHandler:         params.NfcHandler,
		identifyHandler:    params.IdentifyHandler,
		transactionHandler: params.TransactionHandler,
		accountHandler:     params.AccountHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/access-token", r.authHandler.LoginWithAccessToken)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/password/invitation/redeem", r.authHandler.RedeemInvitation)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
	}

	// Terminal routes: a member operates the reader or scanner for a customer
	terminal := apiV1.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleMember))
	{
		terminal.POST("/nfc/card-type", r.nfcHandler.CardType)
		terminal.POST("/nfc/challenge", r.nfcHandler.Challenge)
		terminal.POST("/nfc/response", r.nfcHandler.Response)
		terminal.POST("/identify/barcode", r.identifyHandler.IdentifyBarcode)
		terminal.POST("/transactions", r.transactionHandler.Execute)
	}

	// Account routes: the owner or an admin, enforced by the usecases
	accounts := apiV1.Group("/accounts/:id", r.authMiddleware.Authenticate)
	{
		accounts.GET("", r.accountHandler.GetAccount)
		accounts.GET("/transactions", r.transactionHandler.ListByAccount)
		accounts.GET("/transactions/:txId", r.transactionHandler.GetByAccountAndID)
		accounts.GET("/tab.png", r.identifyHandler.TabQRCode)
		accounts.POST("/nfc", r.nfcHandler.RegisterCard)
		accounts.DELETE("/nfc", r.nfcHandler.RemoveCard)
		accounts.PUT("/barcode", r.identifyHandler.RegisterBarcode)
		accounts.DELETE("/password", r.accountHandler.RemovePassword)
	}

	admin := apiV1.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/accounts", r.accountHandler.CreateAccount)
		admin.PUT("/accounts/:id", r.accountHandler.UpdateAccount)
		admin.POST("/accounts/:id/invitation", r.accountHandler.CreateInvitation)
		admin.POST("/accounts/:id/password-reset", r.accountHandler.CreatePasswordReset)
		admin.POST("/accounts/:id/access-token", r.accountHandler.IssueAccessToken)
		admin.POST("/ledger/validate", r.transactionHandler.ValidateLedger)
	}
}
