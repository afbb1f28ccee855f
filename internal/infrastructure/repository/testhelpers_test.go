package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/database"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&models.UserModel{}, &models.TicketModel{}))
	return gdb
}

func createUser(t *testing.T, repo *UserRepository, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "$2a$04$hash-for-"+username)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), u))
	return u
}

func newTestUserRepository(gdb *gorm.DB) *UserRepository {
	return NewUserRepository(gdb, logger.NewNopLogger())
}
