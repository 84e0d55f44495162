package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cashless/internal/delivery/api/response"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/errors"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler books purchases at terminals and serves ledger history.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

type TransactionItemRequest struct {
	// Price is charged in cents; a negative price is a top-up.
	Price                 int64      `json:"price"`
	PayWithStamps         string     `json:"pay_with_stamps" validate:"stamp_type"`
	GiveStamps            string     `json:"give_stamps" validate:"stamp_type"`
	CouldBePaidWithStamps string     `json:"could_be_paid_with_stamps" validate:"stamp_type"`
	ProductID             *uuid.UUID `json:"product_id"`
}

// ExecuteRequest carries the one-time token obtained from the card handshake or barcode identification.
type ExecuteRequest struct {
	AccountToken      string                   `json:"account_token" validate:"required"`
	RejectIfStampable bool                     `json:"reject_if_stampable"`
	Items             []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ExecuteResponse struct {
	Account     *AccountView     `json:"account"`
	Transaction *TransactionView `json:"transaction"`
}

// CancelledDetails lets the terminal offer stamp payment and retry without identifying the customer again.
type CancelledDetails struct {
	AccountToken string       `json:"account_token"`
	Account      *AccountView `json:"account"`
}

func (r *ExecuteRequest) items() []entity.TransactionItem {
	items := make([]entity.TransactionItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = entity.TransactionItem{
			Index:                 i,
			Price:                 item.Price,
			PayWithStamps:         entity.StampType(item.PayWithStamps),
			GiveStamps:            entity.StampType(item.GiveStamps),
			CouldBePaidWithStamps: entity.StampType(item.CouldBePaidWithStamps),
			ProductID:             item.ProductID,
		}
	}

	return items
}

func (h *TransactionHandler) Execute(c echo.Context) error {
	var req ExecuteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.transactionUC.ExecuteWithToken(c.Request().Context(), req.AccountToken, req.items(), req.RejectIfStampable)
	if errors.Is(err, domainerrors.ErrTransactionCancelled) && out != nil {
		cancelled := domainerrors.ErrTransactionCancelled

		return response.Error(c, cancelled.HTTPCode(), cancelled.ErrorCode(), cancelled.Message(), &CancelledDetails{
			AccountToken: out.AccountToken,
			Account:      newAccountView(out.Account),
		})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &ExecuteResponse{
		Account:     newAccountView(out.Account),
		Transaction: newTransactionView(out.Transaction),
	})
}

// ListByAccount returns the transactions in [from, to). Both bounds are optional RFC 3339 times.
func (h *TransactionHandler) ListByAccount(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var from, to time.Time
	if err := echo.QueryParamsBinder(c).
		Time("from", &from, time.RFC3339).
		Time("to", &to, time.RFC3339).
		BindError(); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "from and to must be RFC 3339 times")
	}

	txs, err := h.transactionUC.ListByAccount(c.Request().Context(), actor, accountID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*TransactionView, len(txs))
	for i, tx := range txs {
		views[i] = newTransactionView(tx)
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *TransactionHandler) GetByAccountAndID(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	transactionID, err := pathUUID(c, "txId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.GetByAccountAndID(c.Request().Context(), actor, accountID, transactionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionView(tx))
}

// ValidateLedger lists accounts whose balance disagrees with their transactions.
func (h *TransactionHandler) ValidateLedger(c echo.Context) error {
	actor, ok := actorOf(c)
	if !ok {
		return response.Unauthorized(c)
	}

	mismatches, err := h.transactionUC.ValidateAll(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if len(mismatches) > 0 {
		h.logger.Warn("Ledger validation found mismatches", slog.Int("count", len(mismatches)))
	}

	type mismatchView struct {
		AccountID     uuid.UUID `json:"account_id"`
		Balance       int64     `json:"balance"`
		LedgerBalance int64     `json:"ledger_balance"`
	}
	views := make([]mismatchView, len(mismatches))
	for i, m := range mismatches {
		views[i] = mismatchView{AccountID: m.AccountID, Balance: m.Balance, LedgerBalance: m.LedgerBalance}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid":      len(views) == 0,
		"mismatches": views,
	})
}
