package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// SQLiteDriverName is go-sqlite3 with CaseFoldFunc registered on every
	// connection.
	SQLiteDriverName = "sqlite3_helpdesk"

	// CaseFoldFunc lowercases full Unicode text. SQLite's LOWER folds ASCII only.
	CaseFoldFunc = "casefold"
)

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(CaseFoldFunc, strings.ToLower, true)
		},
	})
}

// SQLiteDialector opens dsn (a file path or ":memory:") through SQLiteDriverName.
func SQLiteDialector(dsn string) gorm.Dialector {
	return &sqlite.Dialector{DriverName: SQLiteDriverName, DSN: dsn}
}

// CaseFold wraps a SQL expression in the dialect's Unicode lowercase function.
func CaseFold(db *gorm.DB, expr string) string {
	if db.Dialector.Name() == "sqlite" {
		return CaseFoldFunc + "(" + expr + ")"
	}
	return "LOWER(" + expr + ")"
}
