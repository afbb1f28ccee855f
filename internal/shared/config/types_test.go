package config

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseConfig_GetDriver(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DriverMySQL},
		{"mysql", DriverMySQL},
		{"postgres", DriverPostgres},
		{"PostgreSQL", DriverPostgres},
		{"pgx", DriverPostgres},
		{"sqlite", DriverSQLite},
		{"sqlite3", DriverSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := DatabaseConfig{Driver: tt.in}
			assert.Equal(t, tt.want, cfg.GetDriver())
		})
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	base := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		Username: "helpdesk",
		Password: "secret",
		Database: "helpdesk",
	}

	mysql := base
	mysql.Driver = DriverMySQL
	assert.Equal(t, "helpdesk:secret@tcp(db:5432)/helpdesk?charset=utf8mb4&parseTime=True&loc=UTC", mysql.GetDSN())

	pg := base
	pg.Driver = DriverPostgres
	assert.Equal(t, "host=db port=5432 user=helpdesk password=secret dbname=helpdesk sslmode=disable TimeZone=UTC", pg.GetDSN())

	lite := DatabaseConfig{Driver: DriverSQLite, Database: "file:helpdesk.db"}
	assert.Equal(t, "file:helpdesk.db", lite.GetDSN())
}

// A UTC-midnight DATE must not be shifted into the host timezone on write.
func TestDatabaseConfig_MySQLDSNUsesUTC(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverMySQL, Host: "db", Port: 3306, Username: "u", Password: "p", Database: "helpdesk"}

	parsed, err := mysqldriver.ParseDSN(cfg.GetDSN())
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Loc)
	assert.True(t, parsed.ParseTime)

	created := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-18", created.In(parsed.Loc).Format(time.DateOnly))
}

func TestAddrs(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", s.GetAddr())

	r := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", r.GetAddr())
}
