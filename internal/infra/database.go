package infra

import (
	"fmt"

	"motelpos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for the full schema, then applies idempotent SQL patches that GORM cannot
// express (partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates / updates all tables. Also used by integration tests
// against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Occupancy{},
		&model.Product{},
		&model.Consumption{},
		&model.Expense{},
		&model.ShiftSession{},
		&model.Vehicle{},
		&model.IncidentReport{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot produce.
// Each statement guards itself so re-running on a patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// partial index backing the summary retry cron query
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_shift_sessions_pending_summary') THEN
		    CREATE INDEX idx_shift_sessions_pending_summary
		        ON shift_sessions (next_summary_retry_at)
		        WHERE summary_state = 'pending' AND next_summary_retry_at IS NOT NULL;
		  END IF;
		END $$`,
		// partial unique index: at most one open occupancy per room
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_occupancies_one_open_per_room') THEN
		    CREATE UNIQUE INDEX idx_occupancies_one_open_per_room
		        ON occupancies (room_id)
		        WHERE status = 'open';
		  END IF;
		END $$`,
		// partial unique index: at most one open shift session at a time
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_shift_sessions_single_open') THEN
		    CREATE UNIQUE INDEX idx_shift_sessions_single_open
		        ON shift_sessions ((status))
		        WHERE status = 'open';
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
