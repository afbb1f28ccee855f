package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/shared/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"mysql", "mysql"},
		{"postgres", "postgres"},
		{"sqlite", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.DatabaseConfig{Driver: tt.driver, Database: "helpdesk.db"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestDialector_SQLiteRequiresPath(t *testing.T) {
	_, err := Dialector(&config.DatabaseConfig{Driver: "sqlite"})
	assert.Error(t, err)
}

func TestInitGetClose_SQLite(t *testing.T) {
	require.NoError(t, Init(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"}))

	gdb := Get()
	require.NotNil(t, gdb)

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	require.NoError(t, Close())
}

func TestSQLiteDialector_CaseFold(t *testing.T) {
	gdb, err := Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := gdb.DB()
		_ = sqlDB.Close()
	})

	assert.Equal(t, "casefold(title)", CaseFold(gdb, "title"))

	var folded string
	require.NoError(t, gdb.Raw("SELECT "+CaseFold(gdb, "?"), "ÜBERLAUF Ärger").Scan(&folded).Error)
	assert.Equal(t, "überlauf ärger", folded)
}
