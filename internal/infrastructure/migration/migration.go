// Package migration applies the database schema, either through versioned
// goose scripts or through GORM AutoMigrate.
package migration

import (
	"context"
	"embed"
	"fmt"

	"gorm.io/gorm"

	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-inc/helpdesk/internal/shared/config"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
	}
}

// gooseDialect maps a configured driver to its goose dialect and the
// directory under scripts/ holding its SQL files.
func gooseDialect(driver string) string {
	switch driver {
	case config.DriverPostgres:
		return "postgres"
	case config.DriverSQLite:
		return "sqlite3"
	default:
		return "mysql"
	}
}

// Manager runs a migration strategy with start and finish logging.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks AutoMigrate when autoMigrate is set and the versioned
// goose scripts otherwise.
func NewManager(driver string, autoMigrate bool, log logger.Interface) *Manager {
	var strategy Strategy
	if autoMigrate {
		strategy = NewAutoMigrateStrategy(log)
	} else {
		strategy = NewGooseStrategy(driver, log)
	}
	return NewManagerWithStrategy(strategy, log)
}

// NewManagerWithStrategy creates a manager around a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
