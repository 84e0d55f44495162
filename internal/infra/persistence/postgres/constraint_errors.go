package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// dialectPostgres is the gorm dialector name of PostgreSQL connections.
const dialectPostgres = "postgres"

func isPostgres(db *gorm.DB) bool {
	return db.Dialector != nil && db.Dialector.Name() == dialectPostgres
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for database error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErrorCode(err) == pgUniqueViolation {
		return true
	}

	// SQLite reports "UNIQUE constraint failed: <table>.<column>"
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isSerializationFailure reports whether the database aborted the transaction
// because of a concurrent writer, in which case the whole unit may be retried.
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	switch pgErrorCode(err) {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "database table is locked") ||
		strings.Contains(errMsg, "sqlite_busy")
}
