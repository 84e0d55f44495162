package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StampCounters is the JSON column shape of a stamp map.
type StampCounters = datatypes.JSONType[map[string]int64]

// AccountModel mirrors the 'accounts' table. IDs are generated by the application.
type AccountModel struct {
	ID                   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name                 string        `gorm:"type:varchar(100);not null"`
	Email                string        `gorm:"type:varchar(255)"`
	Role                 string        `gorm:"type:varchar(20);not null"`
	Balance              int64         `gorm:"not null"`
	Stamps               StampCounters `gorm:"not null"`
	MinimumCredit        int64         `gorm:"not null"`
	UseDigitalStamps     bool          `gorm:"not null"`
	AllowNfcRegistration bool          `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	AuthMethods []AuthMethodModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&AccountModel{},
		&AuthMethodModel{},
		&TokenModel{},
		&TransactionModel{},
		&TransactionItemModel{},
	}
}
