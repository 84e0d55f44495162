package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodModel mirrors the 'account_auth_methods' table. LookupKey ("<kind>:<identifier>")
// is globally unique, which makes card ids, usernames and barcodes unique across accounts.
type AuthMethodModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	Kind         string    `gorm:"type:varchar(20);not null"`
	LookupKey    string    `gorm:"type:varchar(300);not null;uniqueIndex:idx_auth_methods_lookup_key"`
	Identifier   string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	CardName     string    `gorm:"type:varchar(100)"`
	CardType     string    `gorm:"type:varchar(20)"`
	CardSecret   []byte
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthMethodModel) TableName() string {
	return "account_auth_methods"
}

// TokenModel mirrors the 'auth_tokens' table. Only the SHA-256 hash of the token id is stored.
type TokenModel struct {
	IDHash     string    `gorm:"type:varchar(64);primaryKey"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index:idx_auth_tokens_account_kind"`
	Kind       string    `gorm:"type:varchar(30);not null;index:idx_auth_tokens_account_kind"`
	TTLSeconds int64     `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "auth_tokens"
}
