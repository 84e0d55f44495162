package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table. Rows are insert-only.
type TransactionModel struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_transactions_account_created"`
	Total        int64         `gorm:"not null"`
	BeforeCredit int64         `gorm:"not null"`
	AfterCredit  int64         `gorm:"not null"`
	StampsBefore StampCounters `gorm:"not null"`
	StampsAfter  StampCounters `gorm:"not null"`
	CreatedAt    time.Time     `gorm:"not null;index:idx_transactions_account_created"`

	Items []TransactionItemModel `gorm:"foreignKey:TransactionID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionItemModel mirrors the 'transaction_items' table.
type TransactionItemModel struct {
	TransactionID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Position              int        `gorm:"primaryKey;autoIncrement:false"`
	Price                 int64      `gorm:"not null"`
	PayWithStamps         string     `gorm:"type:varchar(20)"`
	GiveStamps            string     `gorm:"type:varchar(20)"`
	CouldBePaidWithStamps string     `gorm:"type:varchar(20)"`
	ProductID             *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}
