package handler

import (
	"log/slog"
	"net/http"

	"cashless/internal/delivery/api/response"
	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	PasswordUC usecase.PasswordUsecase
	SessionUC  usecase.SessionUsecase
	Logger     *slog.Logger
}

// AuthHandler serves login, logout and the password link endpoints.
type AuthHandler struct {
	passwordUC usecase.PasswordUsecase
	sessionUC  usecase.SessionUsecase
	logger     *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		passwordUC: params.PasswordUC,
		sessionUC:  params.SessionUC,
		logger:     params.Logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AccessTokenLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

type RedeemInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Account *AccountView `json:"account"`
}

func newLoginResponse(out *usecase.LoginOutput) *LoginResponse {
	return &LoginResponse{Token: out.Token, Account: newAccountView(out.Account)}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.passwordUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLoginResponse(out))
}

// LoginWithAccessToken exchanges an admin issued access token for a long session.
func (h *AuthHandler) LoginWithAccessToken(c echo.Context) error {
	var req AccessTokenLoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.sessionUC.LoginWithAccessToken(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLoginResponse(out))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Revoke(c.Request().Context(), deliverycontext.GetSessionToken(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) RedeemInvitation(c echo.Context) error {
	var req RedeemInvitationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.passwordUC.RedeemInvitation(c.Request().Context(), req.Token, req.Username, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.passwordUC.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
