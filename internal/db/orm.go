package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wayfarer/tracker/internal/logging"
	gormModels "wayfarer/tracker/internal/models/gorm"
)

// InitORM opens the flight store. driver is "sqlite" or "postgres".
// Postgres connections are retried for a few seconds so the service can
// start alongside its database container.
func InitORM(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(sqliteDSN(dsn)), cfg)
	case "postgres":
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			time.Sleep(500 * time.Millisecond)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	logging.Info("Connected to flight store via GORM", "driver", driver)
	return db, nil
}

// Migrate creates or updates the airports and flights tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&gormModels.Airport{}, &gormModels.Flight{}); err != nil {
		return fmt.Errorf("failed to migrate flight store: %w", err)
	}
	return nil
}

// Ping checks the connection behind db
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN turns on foreign keys so airports referenced by a flight cannot
// be deleted.
func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "wayfarer.db"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}
	return dsn + "?_foreign_keys=1"
}
