package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID uint
	Body    string
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database shared
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&note{}))
	return gdb
}

func TestRunInTransaction_Commit(t *testing.T) {
	gdb := setupDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, gdb).Create(&note{OwnerID: 1, Body: "kept"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&note{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunInTransaction_Rollback(t *testing.T) {
	gdb := setupDB(t)
	tm := NewTransactionManager(gdb)
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		require.NoError(t, GetTxFromContext(ctx, gdb).Create(&note{OwnerID: 1, Body: "dropped"}).Error)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, gdb.Model(&note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScopes(t *testing.T) {
	gdb := setupDB(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, gdb.Create(&note{OwnerID: 1, Body: "mine"}).Error)
	}
	require.NoError(t, gdb.Create(&note{OwnerID: 2, Body: "theirs"}).Error)

	var mine []note
	require.NoError(t, gdb.Scopes(OwnedBy(1), Window(1, 3)).Order("id").Find(&mine).Error)
	require.Len(t, mine, 3)
	assert.Equal(t, uint(2), mine[0].ID)
	for _, n := range mine {
		assert.Equal(t, uint(1), n.OwnerID)
	}

	var theirs []note
	require.NoError(t, gdb.Scopes(OwnedBy(2)).Find(&theirs).Error)
	require.Len(t, theirs, 1)
	assert.Equal(t, "theirs", theirs[0].Body)
}
