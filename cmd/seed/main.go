// Command seed loads airports into the flight store and builds the reference
// catalogue from a CSV export.
//
//	seed                              seed the built-in list of major airports
//	seed -file airports.json          seed from a JSON array instead
//	seed -reference-csv airports.csv  (re)build the reference catalogue
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/db"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/reference"
	"wayfarer/tracker/internal/services"
)

func main() {
	seedFile := flag.String("file", "", "JSON array of airports to seed (default: built-in list)")
	referenceCSV := flag.String("reference-csv", "", "CSV catalogue to import into the reference database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if *referenceCSV != "" {
		if err := importReference(ctx, cfg, *referenceCSV); err != nil {
			log.Fatalf("import reference catalogue: %v", err)
		}
		return
	}

	if err := seedStore(ctx, cfg, *seedFile); err != nil {
		log.Fatalf("seed airports: %v", err)
	}
}

func importReference(ctx context.Context, cfg config.Config, path string) error {
	if cfg.ReferenceDriver == "csv" {
		log.Printf("REFERENCE_DRIVER=csv reads %s directly; nothing to import", path)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	conn, err := db.ConnectSQL(cfg.ReferenceDriver, cfg.ReferenceDSN, false)
	if err != nil {
		return err
	}
	defer conn.Close()

	rows, err := reference.NewImporter(conn).ImportCSV(ctx, f)
	if err != nil {
		return err
	}
	log.Printf("Imported %d reference airports into %s", rows, cfg.ReferenceDSN)
	return nil
}

func seedStore(ctx context.Context, cfg config.Config, path string) error {
	store, err := db.InitORM(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close(store)

	if err := db.Migrate(store); err != nil {
		return err
	}

	timezones, err := common.DefaultTimezoneFinder()
	if err != nil {
		return err
	}
	seeder := services.NewSeedService(repositories.NewAirportRepository(store), timezones)

	var report *services.SeedReport
	if path == "" {
		report, err = seeder.LoadDefaults(ctx)
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		report, err = seeder.LoadFromJSON(ctx, f)
	}
	if err != nil {
		return err
	}

	log.Printf("Seeded airports: parsed=%d deleted=%d inserted=%d", report.Parsed, report.Deleted, report.Inserted)
	return nil
}
