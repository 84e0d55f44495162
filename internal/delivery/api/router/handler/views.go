package handler

import (
	"time"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountView is the public shape of an account. Password hashes and card keys never leave the server.
type AccountView struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Email                string           `json:"email,omitempty"`
	Role                 entity.Role      `json:"role"`
	Balance              int64            `json:"balance"`
	MinimumCredit        int64            `json:"minimum_credit"`
	Stamps               map[string]int64 `json:"stamps"`
	UseDigitalStamps     bool             `json:"use_digital_stamps"`
	AllowNfcRegistration bool             `json:"allow_nfc_registration"`
	AuthMethods          []AuthMethodView `json:"auth_methods"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

type AuthMethodView struct {
	Kind     entity.AuthMethodKind `json:"kind"`
	Username string                `json:"username,omitempty"`
	CardID   string                `json:"card_id,omitempty"`
	CardName string                `json:"card_name,omitempty"`
	CardType entity.CardType       `json:"card_type,omitempty"`
	Code     string                `json:"code,omitempty"`
}

type TransactionItemView struct {
	Index                 int        `json:"index"`
	Price                 int64      `json:"price"`
	PayWithStamps         string     `json:"pay_with_stamps,omitempty"`
	GiveStamps            string     `json:"give_stamps,omitempty"`
	CouldBePaidWithStamps string     `json:"could_be_paid_with_stamps,omitempty"`
	ProductID             *uuid.UUID `json:"product_id,omitempty"`
}

type TransactionView struct {
	ID           uuid.UUID             `json:"id"`
	AccountID    uuid.UUID             `json:"account_id"`
	Total        int64                 `json:"total"`
	BeforeCredit int64                 `json:"before_credit"`
	AfterCredit  int64                 `json:"after_credit"`
	StampsBefore map[string]int64      `json:"stamps_before"`
	StampsAfter  map[string]int64      `json:"stamps_after"`
	Items        []TransactionItemView `json:"items"`
	CreatedAt    time.Time             `json:"created_at"`
}

// stampsView lists every currency, zero counters included.
func stampsView(s entity.Stamps) map[string]int64 {
	out := make(map[string]int64, len(entity.StampTypes))
	for _, t := range entity.StampTypes {
		out[string(t)] = s.Get(t)
	}

	return out
}

func newAccountView(a *entity.Account) *AccountView {
	if a == nil {
		return nil
	}

	methods := make([]AuthMethodView, 0, len(a.AuthMethods))
	for _, m := range a.AuthMethods {
		view := AuthMethodView{Kind: m.Kind()}
		switch method := m.(type) {
		case *entity.PasswordAuth:
			view.Username = method.Username
		case *entity.NfcAuth:
			view.CardID = method.CardID
			view.CardName = method.Name
			view.CardType = method.CardType
		case *entity.BarcodeAuth:
			view.Code = method.Code
		}
		methods = append(methods, view)
	}

	return &AccountView{
		ID:                   a.ID,
		Name:                 a.Name,
		Email:                a.Email,
		Role:                 a.Role,
		Balance:              a.Balance,
		MinimumCredit:        a.MinimumCredit,
		Stamps:               stampsView(a.Stamps),
		UseDigitalStamps:     a.UseDigitalStamps,
		AllowNfcRegistration: a.AllowNfcRegistration,
		AuthMethods:          methods,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func newTransactionView(tx *entity.Transaction) *TransactionView {
	if tx == nil {
		return nil
	}

	items := make([]TransactionItemView, len(tx.Items))
	for i, item := range tx.Items {
		items[i] = TransactionItemView{
			Index:                 item.Index,
			Price:                 item.Price,
			PayWithStamps:         string(item.PayWithStamps),
			GiveStamps:            string(item.GiveStamps),
			CouldBePaidWithStamps: string(item.CouldBePaidWithStamps),
			ProductID:             item.ProductID,
		}
	}

	return &TransactionView{
		ID:           tx.ID,
		AccountID:    tx.AccountID,
		Total:        tx.Total,
		BeforeCredit: tx.BeforeCredit,
		AfterCredit:  tx.AfterCredit,
		StampsBefore: stampsView(tx.StampsBefore),
		StampsAfter:  stampsView(tx.StampsAfter),
		Items:        items,
		CreatedAt:    tx.CreatedAt,
	}
}
