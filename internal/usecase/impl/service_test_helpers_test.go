package impl

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"cashless/config"
	"cashless/internal/domain/entity"
	"cashless/internal/domain/service"
	"cashless/internal/infra/auth"
	"cashless/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Master = "unit-test-master-secret"
	config.ApplyDefaults(cfg)

	return cfg
}

func newTestTokenService(t *testing.T, cfg *config.Config) service.TokenService {
	t.Helper()

	secrets, err := auth.NewSecrets(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(secrets)
	require.NoError(t, err)

	return tokens
}

// newTestDB opens a migrated SQLite database for tests that run against real repositories.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "cashless.db") + "?_busy_timeout=5000&_txlock=immediate&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestAccount(role entity.Role, methods ...entity.AuthMethod) *entity.Account {
	return &entity.Account{
		ID:               uuid.New(),
		Name:             "Test Account",
		Email:            "test@example.com",
		Role:             role,
		Stamps:           entity.Stamps{},
		UseDigitalStamps: true,
		AuthMethods:      methods,
	}
}
