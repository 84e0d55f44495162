package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable ledger entry. It is appended by the transaction
// engine together with the account update and never modified afterwards.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Total     int64 // signed money delta in cents; negative is a debit

	BeforeCredit int64
	AfterCredit  int64
	StampsBefore Stamps
	StampsAfter  Stamps

	Items     []TransactionItem
	CreatedAt time.Time
}

// TransactionItem is one line of a purchase, kept for auditing.
type TransactionItem struct {
	Index         int
	Price         int64     // amount charged in cents; a negative price tops the account up
	PayWithStamps StampType // when set, the price is waived and stamps are taken instead
	GiveStamps    StampType // when set and paid with money, one stamp is credited

	// CouldBePaidWithStamps names the currency this item could have been paid
	// with, used by the stampable check when GiveStamps is empty.
	CouldBePaidWithStamps StampType

	ProductID *uuid.UUID
}

// StampCandidate returns the currency the item could be paid with, if any.
func (i TransactionItem) StampCandidate() StampType {
	if i.CouldBePaidWithStamps.IsSet() {
		return i.CouldBePaidWithStamps
	}

	return i.GiveStamps
}

// LedgerMismatch reports an account whose balance disagrees with its ledger.
type LedgerMismatch struct {
	AccountID     uuid.UUID
	Balance       int64
	LedgerBalance int64
}
