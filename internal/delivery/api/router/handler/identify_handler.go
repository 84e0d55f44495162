package handler

import (
	"log/slog"
	"net/http"

	"cashless/internal/delivery/api/response"
	"cashless/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentifyHandlerParams holds dependencies for IdentifyHandler, injected by Fx.
type IdentifyHandlerParams struct {
	fx.In

	IdentificationUC usecase.IdentificationUsecase
	Logger           *slog.Logger
}

// IdentifyHandler serves the public tab barcode.
type IdentifyHandler struct {
	identificationUC usecase.IdentificationUsecase
	logger           *slog.Logger
}

func NewIdentifyHandler(params IdentifyHandlerParams) *IdentifyHandler {
	return &IdentifyHandler{
		identificationUC: params.IdentificationUC,
		logger:           params.Logger,
	}
}

// IdentifyBarcodeRequest accepts the raw code or the scanned QR payload.
type IdentifyBarcodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type IdentifyResponse struct {
	Token   string       `json:"token"`
	Account *AccountView `json:"account"`
}

type RegisterBarcodeRequest struct {
	Code string `json:"code" validate:"required,max=128"`
}

func (h *IdentifyHandler) IdentifyBarcode(c echo.Context) error {
	var req IdentifyBarcodeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.identificationUC.IdentifyByBarcode(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &IdentifyResponse{Token: out.Token, Account: newAccountView(out.Account)})
}

func (h *IdentifyHandler) RegisterBarcode(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterBarcodeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.identificationUC.RegisterBarcode(c.Request().Context(), actor, accountID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// TabQRCode streams the account's tab code as a PNG.
func (h *IdentifyHandler) TabQRCode(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.identificationUC.TabQRCode(c.Request().Context(), actor, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
