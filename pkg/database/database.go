package database

import (
	"fmt"

	"github.com/CristianHourcade/Piria-sub000/internal/model"
	"github.com/CristianHourcade/Piria-sub000/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection, applies pool settings and runs
// migrations. The returned handle is passed to repository constructors;
// there is no package-level singleton so tests can substitute their own
// database.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Error
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Surface duplicate-key violations as gorm.ErrDuplicatedKey so the
		// repository layer can classify them
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	// Run migrations
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return db, nil
}

// Migrate runs AutoMigrate for every entity table. Exported so tests can
// prepare an in-memory database with the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.ClientService{},
		&model.ServiceCollaborator{},
		&model.PartialPayment{},
		&model.Project{},
		&model.ProjectCollaborator{},
		&model.Task{},
		&model.TaskComment{},
		&model.TimeEntry{},
		&model.Account{},
		&model.Expense{},
		&model.Income{},
		&model.Lead{},
		&model.TaskTemplate{},
		&model.TaskTemplateItem{},
	)
}
