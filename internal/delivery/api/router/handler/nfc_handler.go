package handler

import (
	"log/slog"
	"net/http"

	"cashless/internal/delivery/api/response"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/infra/crypto"
	"cashless/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NfcHandlerParams holds dependencies for NfcHandler, injected by Fx.
type NfcHandlerParams struct {
	fx.In

	NfcUC  usecase.NfcUsecase
	Codec  *crypto.ByteCodec
	Logger *slog.Logger
}

// NfcHandler exposes the two handshake phases to terminals and card management to account owners.
// Every byte field travels in the configured codec.
type NfcHandler struct {
	nfcUC  usecase.NfcUsecase
	codec  *crypto.ByteCodec
	logger *slog.Logger
}

func NewNfcHandler(params NfcHandlerParams) *NfcHandler {
	return &NfcHandler{
		nfcUC:  params.NfcUC,
		codec:  params.Codec,
		logger: params.Logger,
	}
}

type CardTypeRequest struct {
	CardID string `json:"card_id" validate:"required"`
}

type CardTypeResponse struct {
	CardID   string          `json:"card_id"`
	CardType entity.CardType `json:"card_type"`
}

type ChallengeRequest struct {
	CardID string `json:"card_id" validate:"required"`
	EkRndB string `json:"ek_rndB" validate:"required"`
}

type ChallengeResponse struct {
	CardID            string `json:"card_id"`
	DkRndARndBShifted string `json:"dk_rndA_rndBshifted"`
}

type ResponseRequest struct {
	CardID            string `json:"card_id" validate:"required"`
	DkRndARndBShifted string `json:"dk_rndA_rndBshifted" validate:"required"`
	EkRndAShiftedCard string `json:"ek_rndAshifted_card" validate:"required"`
}

type ResponseResponse struct {
	CardID     string       `json:"card_id"`
	SessionKey string       `json:"session_key"`
	Token      string       `json:"token"`
	Account    *AccountView `json:"account"`
}

type RegisterCardRequest struct {
	Name     string `json:"name" validate:"max=64"`
	CardID   string `json:"card_id" validate:"required"`
	CardType string `json:"card_type" validate:"required,card_type"`
	// Secret is optional; mifare cards without one get a generated key.
	Secret string `json:"secret"`
}

type RegisterCardResponse struct {
	Account  *AccountView `json:"account"`
	WriteKey string       `json:"write_key,omitempty"`
}

// decode turns a wire field into bytes. Malformed input is a bad request, never an auth failure.
func (h *NfcHandler) decode(field, value string) ([]byte, error) {
	b, err := h.codec.Decode(value)
	if err != nil {
		return nil, domainerrors.ErrInvalidEncoding.WithDetails(field)
	}

	return b, nil
}

// decodeCardID returns the canonical card id.
func (h *NfcHandler) decodeCardID(value string) (string, error) {
	raw, err := h.decode("card_id", value)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", domainerrors.ErrInvalidEncoding.WithDetails("card_id")
	}

	return entity.CardIDFromBytes(raw), nil
}

// CardType tells the terminal which handshake to run.
func (h *NfcHandler) CardType(c echo.Context) error {
	var req CardTypeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cardID, err := h.decodeCardID(req.CardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cardType, err := h.nfcUC.CardType(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CardTypeResponse{CardID: req.CardID, CardType: cardType})
}

// Challenge is phase 1 of the handshake.
func (h *NfcHandler) Challenge(c echo.Context) error {
	var req ChallengeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cardID, err := h.decodeCardID(req.CardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ekRndB, err := h.decode("ek_rndB", req.EkRndB)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dk, err := h.nfcUC.Challenge(c.Request().Context(), cardID, ekRndB)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ChallengeResponse{
		CardID:            req.CardID,
		DkRndARndBShifted: h.codec.Encode(dk),
	})
}

// Response is phase 2 of the handshake. It returns the session key and a one-time token for the purchase.
func (h *NfcHandler) Response(c echo.Context) error {
	var req ResponseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cardID, err := h.decodeCardID(req.CardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	dk, err := h.decode("dk_rndA_rndBshifted", req.DkRndARndBShifted)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ek, err := h.decode("ek_rndAshifted_card", req.EkRndAShiftedCard)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.nfcUC.Response(c.Request().Context(), cardID, dk, ek)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ResponseResponse{
		CardID:     req.CardID,
		SessionKey: h.codec.Encode(out.SessionKey),
		Token:      out.Token,
		Account:    newAccountView(out.Account),
	})
}

func (h *NfcHandler) RegisterCard(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterCardRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cardID, err := h.decodeCardID(req.CardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var secret []byte
	if req.Secret != "" {
		if secret, err = h.decode("secret", req.Secret); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	out, err := h.nfcUC.RegisterCard(c.Request().Context(), actor, &usecase.RegisterCardInput{
		AccountID: accountID,
		Name:      req.Name,
		CardID:    cardID,
		CardType:  entity.CardType(req.CardType),
		Secret:    secret,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := &RegisterCardResponse{Account: newAccountView(out.Account)}
	if len(out.WriteKey) > 0 {
		resp.WriteKey = h.codec.Encode(out.WriteKey)
	}

	return response.Success(c, http.StatusCreated, resp)
}

func (h *NfcHandler) RemoveCard(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.nfcUC.RemoveCard(c.Request().Context(), actor, accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
