package db

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/reference"
)

// OpenReference opens the read-only airport catalogue.
//
//	sqlite3   REFERENCE_DSN is a file path, opened read-only
//	postgres  REFERENCE_DSN is a libpq connection string
//	mysql     REFERENCE_DSN is a go-sql-driver DSN
//	csv       REFERENCE_CSV is loaded into memory
func OpenReference(driver, dsn, csvPath string) (reference.Dataset, error) {
	if driver == "csv" {
		ds, err := reference.LoadCSVFile(csvPath)
		if err != nil {
			return nil, err
		}
		logging.Info("Loaded reference catalogue from CSV", "path", csvPath, "rows", ds.Len())
		return ds, nil
	}

	conn, err := ConnectSQL(driver, dsn, true)
	if err != nil {
		return nil, err
	}

	logging.Info("Connected to reference catalogue", "driver", driver)
	return reference.NewSQLDataset(conn), nil
}

// ConnectSQL opens a sqlx connection for one of the catalogue drivers.
// readOnly only affects sqlite3, which otherwise creates missing files.
func ConnectSQL(driver, dsn string, readOnly bool) (*sqlx.DB, error) {
	switch driver {
	case "sqlite3", "":
		driver = reference.SQLiteDriver
		if readOnly {
			dsn = "file:" + dsn + "?mode=ro"
		}
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported REFERENCE_DRIVER %q", driver)
	}

	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect(driver, dsn)
		if err == nil || driver == reference.SQLiteDriver {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open reference catalogue (%s): %w", driver, err)
	}

	return conn, nil
}
