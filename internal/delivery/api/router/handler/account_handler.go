package handler

import (
	"log/slog"
	"net/http"

	"cashless/internal/delivery/api/response"
	"cashless/internal/domain/entity"
	"cashless/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC  usecase.AccountUsecase
	PasswordUC usecase.PasswordUsecase
	SessionUC  usecase.SessionUsecase
	Logger     *slog.Logger
}

// AccountHandler serves account reads and the admin endpoints that manage accounts and their links.
type AccountHandler struct {
	accountUC  usecase.AccountUsecase
	passwordUC usecase.PasswordUsecase
	sessionUC  usecase.SessionUsecase
	logger     *slog.Logger
}

func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:  params.AccountUC,
		passwordUC: params.PasswordUC,
		sessionUC:  params.SessionUC,
		logger:     params.Logger,
	}
}

type CreateAccountRequest struct {
	Name                 string `json:"name" validate:"required,max=128"`
	Email                string `json:"email" validate:"omitempty,email"`
	Role                 string `json:"role" validate:"omitempty,role"`
	MinimumCredit        int64  `json:"minimum_credit"`
	UseDigitalStamps     *bool  `json:"use_digital_stamps"`
	AllowNfcRegistration bool   `json:"allow_nfc_registration"`
}

// UpdateAccountRequest leaves absent fields unchanged.
type UpdateAccountRequest struct {
	Name                 *string `json:"name" validate:"omitempty,max=128"`
	Email                *string `json:"email" validate:"omitempty,email"`
	Role                 *string `json:"role" validate:"omitempty,role"`
	MinimumCredit        *int64  `json:"minimum_credit"`
	UseDigitalStamps     *bool   `json:"use_digital_stamps"`
	AllowNfcRegistration *bool   `json:"allow_nfc_registration"`
}

// LinkResponse carries a single-use token for an invitation, password reset or admin login.
type LinkResponse struct {
	Token string `json:"token"`
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), actor, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// CreateAccount opens an account. Digital stamps are on unless explicitly disabled.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req CreateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	useDigitalStamps := true
	if req.UseDigitalStamps != nil {
		useDigitalStamps = *req.UseDigitalStamps
	}

	account, err := h.accountUC.CreateAccount(c.Request().Context(), actor, &usecase.CreateAccountInput{
		Name:                 req.Name,
		Email:                req.Email,
		Role:                 entity.Role(req.Role),
		MinimumCredit:        req.MinimumCredit,
		UseDigitalStamps:     useDigitalStamps,
		AllowNfcRegistration: req.AllowNfcRegistration,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(account))
}

func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.UpdateAccountInput{
		Name:                 req.Name,
		Email:                req.Email,
		MinimumCredit:        req.MinimumCredit,
		UseDigitalStamps:     req.UseDigitalStamps,
		AllowNfcRegistration: req.AllowNfcRegistration,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), actor, accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

func (h *AccountHandler) CreateInvitation(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.passwordUC.CreateInvitation(c.Request().Context(), actor, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &LinkResponse{Token: token})
}

func (h *AccountHandler) CreatePasswordReset(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.passwordUC.CreatePasswordReset(c.Request().Context(), actor, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &LinkResponse{Token: token})
}

// IssueAccessToken mints a short lived login token, used to hand an account to a device.
func (h *AccountHandler) IssueAccessToken(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.sessionUC.IssueAccessToken(c.Request().Context(), actor, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &LinkResponse{Token: token})
}

func (h *AccountHandler) RemovePassword(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.passwordUC.RemovePassword(c.Request().Context(), actor, accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
